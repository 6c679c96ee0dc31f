package sfapi

import (
	"context"
	"net/http"
	"os"
)

// Environment variables read by the process-wide credential default.
const (
	EnvEmail     = "SUPERFAKTURA_EMAIL"
	EnvAPIKey    = "SUPERFAKTURA_API_KEY"
	EnvCompanyID = "SUPERFAKTURA_COMPANY_ID"
	EnvCountry   = "SUPERFAKTURA_COUNTRY"
	EnvBaseURL   = "SUPERFAKTURA_API_URL"
)

// Request headers carrying per-call credentials in multi-tenant deployments.
// Lookup is case-insensitive.
const (
	HeaderEmail     = "x-superfaktura-email"
	HeaderAPIKey    = "x-superfaktura-api-key"
	HeaderCompanyID = "x-superfaktura-company-id"
	HeaderCountry   = "x-superfaktura-country"
)

type credentialsKey struct{}

// WithCredentials attaches call-scoped credentials to a context. Fields left
// empty fall through to the process environment during resolution.
func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromContext returns the call-scoped credentials, if any.
func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)

	return creds, ok
}

// CredentialsFromHeaders extracts per-call credentials from request headers.
// It reports false when no credential header is present at all.
func CredentialsFromHeaders(header http.Header) (Credentials, bool) {
	creds := Credentials{
		Email:     header.Get(HeaderEmail),
		APIKey:    header.Get(HeaderAPIKey),
		CompanyID: header.Get(HeaderCompanyID),
		Country:   header.Get(HeaderCountry),
	}

	if creds.Email == "" && creds.APIKey == "" && creds.CompanyID == "" && creds.Country == "" {
		return Credentials{}, false
	}

	return creds, true
}

// ResolveCredentials resolves the per-call credential tuple. Precedence per
// field, highest first: the call-scoped context, then the process
// environment, then (for the country only) DefaultCountry. Email and API key
// have no fallback; if both end up empty the call fails with a
// ConfigurationError naming the two fields. The company ID is optional and
// stays empty when unresolved.
//
// Resolution is a pure function of the context and the environment: identical
// inputs always produce the identical tuple.
func ResolveCredentials(ctx context.Context) (Credentials, error) {
	fromContext, _ := CredentialsFromContext(ctx)

	creds := Credentials{
		Email:     firstNonEmpty(fromContext.Email, os.Getenv(EnvEmail)),
		APIKey:    firstNonEmpty(fromContext.APIKey, os.Getenv(EnvAPIKey)),
		CompanyID: firstNonEmpty(fromContext.CompanyID, os.Getenv(EnvCompanyID)),
		Country:   firstNonEmpty(fromContext.Country, os.Getenv(EnvCountry), DefaultCountry),
		Module:    ModuleID,
	}

	if creds.Email == "" && creds.APIKey == "" {
		return Credentials{}, NewMissingCredentialsError(EnvEmail, EnvAPIKey)
	}

	if creds.Email == "" {
		return Credentials{}, NewMissingCredentialsError(EnvEmail)
	}

	if creds.APIKey == "" {
		return Credentials{}, NewMissingCredentialsError(EnvAPIKey)
	}

	return creds, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
