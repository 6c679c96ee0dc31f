package sfapi

import (
	"context"
	"time"
)

// ModuleID identifies this client in the Authorization header's module field.
const ModuleID = "sfapi-go/1.0"

// DefaultCountry is used when neither the call context nor the environment
// carries a country code.
const DefaultCountry = "sk"

// Credentials is the per-call authentication tuple. It is resolved once per
// call (or once per process in single-tenant mode) and never mutated
// afterward.
type Credentials struct {
	Email     string
	APIKey    string
	CompanyID string
	Country   string
	Module    string
}

// Config represents client configuration for building a Client.
//
// BaseURL, when set, is used verbatim and overrides the country lookup; this
// supports sandbox and custom deployments. Otherwise Country selects the
// service host from the fixed table in BaseURLs.
type Config struct {
	// BaseURL: explicit service URL. Optional; wins over Country when set.
	BaseURL string
	// Country: two-letter region code ("sk", "cz", "at") or a sandbox
	// variant ("sandbox-sk", "sandbox-cz"). Defaults to DefaultCountry.
	Country string

	// Email and APIKey authenticate every request. Both are required.
	Email  string
	APIKey string
	// CompanyID selects the company for accounts with several; optional.
	CompanyID string

	// HTTPTimeout bounds each request. Defaults to 30 seconds.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Args is an open set of optional, human-named operation parameters. A key
// absent from the map is "unset"; a key present with a zero value is set and
// must reach the wire.
type Args map[string]interface{}

// Int reads an integer-valued argument. JSON-decoded numbers arrive as
// float64 and are accepted.
func (a Args) Int(key string) (int64, bool) {
	switch v := a[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

// String reads a string-valued argument.
func (a Args) String(key string) (string, bool) {
	s, ok := a[key].(string)

	return s, ok
}

// Envelope is the uniform operation result: the remote service's decoded JSON
// response, or {"error": ..., "status": "failed"} on any remote failure.
type Envelope map[string]interface{}

// Failed reports whether the envelope is the uniform failure shape.
func (e Envelope) Failed() bool {
	return e["status"] == "failed"
}

// ErrorMessage returns the failure message, or "" for a success envelope.
func (e Envelope) ErrorMessage() string {
	if msg, ok := e["error"].(string); ok {
		return msg
	}

	return ""
}

// FailureEnvelope builds the uniform failure shape for a remote/operational
// error.
func FailureEnvelope(message string) Envelope {
	return Envelope{"error": message, "status": "failed"}
}

// InvoicesClient exposes invoice operations.
type InvoicesClient interface {
	Create(ctx context.Context, args Args) Envelope
	List(ctx context.Context, args Args) Envelope
	Get(ctx context.Context, id int64) Envelope
	Edit(ctx context.Context, id int64, payload map[string]interface{}) Envelope
	Delete(ctx context.Context, id int64) Envelope
	Send(ctx context.Context, id int64, email string) Envelope
	MarkPaid(ctx context.Context, id int64, amount float64, args Args) Envelope
	SetLanguage(ctx context.Context, id int64, lang string) Envelope
	GetPDF(ctx context.Context, id int64, lang string) Envelope
}

// ClientsClient exposes address book operations.
type ClientsClient interface {
	Create(ctx context.Context, args Args) Envelope
	List(ctx context.Context, args Args) Envelope
	Get(ctx context.Context, id int64) Envelope
	Update(ctx context.Context, id int64, updates map[string]interface{}) Envelope
	Delete(ctx context.Context, id int64) Envelope
}

// ExpensesClient exposes expense operations.
type ExpensesClient interface {
	Create(ctx context.Context, args Args) Envelope
	List(ctx context.Context, args Args) Envelope
	Get(ctx context.Context, id int64) Envelope
	Edit(ctx context.Context, id int64, payload map[string]interface{}) Envelope
	Delete(ctx context.Context, id int64) Envelope
}

// Client is the aggregate API client.
type Client interface {
	Invoices() InvoicesClient
	Clients() ClientsClient
	Expenses() ExpensesClient
	// BaseURL returns the resolved service URL the client talks to.
	BaseURL() string
}
