package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the fixed timeout for API requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Per-resource page size ceilings. Requests above the ceiling are clamped to
// it before encoding; clamping is silent.
const (
	InvoicesMaxPerPage = 200
	ClientsMaxPerPage  = 100
	ExpensesMaxPerPage = 100
)

// Display and output constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"
)

// Output format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Serve transport constants.
const (
	// TransportStdio serves MCP over standard input/output.
	TransportStdio = "stdio"

	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP = "http"

	// DefaultListenAddr is the default HTTP listen address for serve.
	DefaultListenAddr = ":8430"
)
