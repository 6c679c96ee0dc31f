package sfclient

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"

	"github.com/superfaktura-tools/sfapi/internal/client"
	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// New creates a new SuperFaktura API client from an explicit configuration.
func New(config *sfapi.Config) (sfapi.Client, error) {
	if config == nil {
		return nil, constants.ErrConfigRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// NewFromEnv creates a client from the process environment. A .env file in
// the working directory is loaded first when present.
func NewFromEnv() (sfapi.Client, error) {
	_ = godotenv.Load()

	config := &sfapi.Config{
		Email:     os.Getenv(sfapi.EnvEmail),
		APIKey:    os.Getenv(sfapi.EnvAPIKey),
		CompanyID: os.Getenv(sfapi.EnvCompanyID),
		Country:   os.Getenv(sfapi.EnvCountry),
		BaseURL:   os.Getenv(sfapi.EnvBaseURL),
	}

	return New(config)
}

// NewForCredentials creates a client for an already-resolved credential
// tuple, honoring the process-level base URL override.
func NewForCredentials(creds sfapi.Credentials, logger sfapi.Logger) (sfapi.Client, error) {
	config := &sfapi.Config{
		Email:     creds.Email,
		APIKey:    creds.APIKey,
		CompanyID: creds.CompanyID,
		Country:   creds.Country,
		BaseURL:   os.Getenv(sfapi.EnvBaseURL),
		Logger:    logger,
	}

	return New(config)
}

var (
	defaultMu     sync.RWMutex
	defaultClient sfapi.Client
	defaultLogger sfapi.Logger
)

// InitDefault initializes the process-wide default client from the
// environment. It is meant to run once at startup. When the environment
// carries no credentials the default stays absent, which is not an error:
// every call must then resolve credentials from its own context.
func InitDefault(logger sfapi.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLogger = logger

	_ = godotenv.Load()

	config := &sfapi.Config{
		Email:     os.Getenv(sfapi.EnvEmail),
		APIKey:    os.Getenv(sfapi.EnvAPIKey),
		CompanyID: os.Getenv(sfapi.EnvCompanyID),
		Country:   os.Getenv(sfapi.EnvCountry),
		BaseURL:   os.Getenv(sfapi.EnvBaseURL),
		Logger:    logger,
	}

	cli, err := client.New(config)
	if err != nil {
		if logger != nil {
			logger.Info("no default client: per-call credentials required", map[string]interface{}{
				"reason": err.Error(),
			})
		}

		return
	}

	defaultClient = cli
}

// Default returns the process-wide default client, or nil when the
// environment carried no credentials at startup. The default is created once
// and read-only thereafter.
func Default() sfapi.Client {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultClient
}

// ForContext returns the client to use for one call. Calls carrying
// credentials on their context get a fresh, fully independent client; calls
// without context credentials fall back to the process default. With neither
// in place the call fails with a configuration error.
func ForContext(ctx context.Context) (sfapi.Client, error) {
	if _, ok := sfapi.CredentialsFromContext(ctx); !ok {
		if cli := Default(); cli != nil {
			return cli, nil
		}
	}

	creds, err := sfapi.ResolveCredentials(ctx)
	if err != nil {
		return nil, err
	}

	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()

	return NewForCredentials(creds, logger)
}
