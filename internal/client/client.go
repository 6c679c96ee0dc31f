// Package client implements the sfapi resource clients. Each resource client
// is thin glue: it declares its field schemas and list spec, delegates
// payload and query construction to the generic engines in pkg/sfapi, and
// executes through the shared authenticated transport.
package client

import (
	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/internal/http"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// Client implements the sfapi.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	invoices sfapi.InvoicesClient
	clients  sfapi.ClientsClient
	expenses sfapi.ExpensesClient
}

// New creates a new API client. The base URL and credentials are resolved
// once here; the returned client is read-only and safe to share across
// concurrent calls.
func New(config *sfapi.Config) (*Client, error) {
	if config == nil {
		return nil, constants.ErrConfigRequired
	}

	creds, err := resolveConfigCredentials(config)
	if err != nil {
		return nil, err
	}

	baseURL, err := sfapi.ResolveBaseURL(config.BaseURL, creds.Country)
	if err != nil {
		return nil, err
	}

	httpOpts := httpClientOptions(config)
	httpClient := http.NewClient(baseURL, creds, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
	}

	client.invoices = NewInvoicesClient(httpClient)
	client.clients = NewClientsClient(httpClient)
	client.expenses = NewExpensesClient(httpClient)

	return client, nil
}

// resolveConfigCredentials validates the credential tuple carried on the
// config and fills the country default.
func resolveConfigCredentials(config *sfapi.Config) (sfapi.Credentials, error) {
	creds := sfapi.Credentials{
		Email:     config.Email,
		APIKey:    config.APIKey,
		CompanyID: config.CompanyID,
		Country:   config.Country,
		Module:    sfapi.ModuleID,
	}

	if creds.Country == "" {
		creds.Country = sfapi.DefaultCountry
	}

	if creds.Email == "" || creds.APIKey == "" {
		var missing []string

		if creds.Email == "" {
			missing = append(missing, "email")
		}

		if creds.APIKey == "" {
			missing = append(missing, "api key")
		}

		return sfapi.Credentials{}, sfapi.NewMissingCredentialsError(missing...)
	}

	return creds, nil
}

// httpClientOptions builds transport options from config.
func httpClientOptions(config *sfapi.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

// BaseURL implements sfapi.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Invoices implements sfapi.Client.Invoices.
func (c *Client) Invoices() sfapi.InvoicesClient {
	return c.invoices
}

// Clients implements sfapi.Client.Clients.
func (c *Client) Clients() sfapi.ClientsClient {
	return c.clients
}

// Expenses implements sfapi.Client.Expenses.
func (c *Client) Expenses() sfapi.ExpensesClient {
	return c.expenses
}
