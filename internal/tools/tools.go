// Package tools exposes the operation catalog to an MCP dispatch framework.
// Each tool is thin glue: decode arguments, resolve the per-call client, run
// the operation, relay the result envelope as JSON text.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
	"github.com/superfaktura-tools/sfapi/pkg/sfclient"
)

// Register adds the full tool catalog to an MCP server.
func Register(s *server.MCPServer) {
	registerInvoiceTools(s)
	registerClientTools(s)
	registerExpenseTools(s)
}

// HTTPContextFunc lifts the x-superfaktura-* credential headers of a
// multi-tenant request into the call context. Calls without credential
// headers fall through to the process-wide default client.
func HTTPContextFunc(ctx context.Context, r *nethttp.Request) context.Context {
	if creds, ok := sfapi.CredentialsFromHeaders(r.Header); ok {
		return sfapi.WithCredentials(ctx, creds)
	}

	return ctx
}

// resolveClient picks the client for one call: context credentials first,
// then the process default. Configuration failures become tool errors, not
// envelopes; they are setup defects, not remote outcomes.
func resolveClient(ctx context.Context) (sfapi.Client, *mcp.CallToolResult) {
	cli, err := sfclient.ForContext(ctx)
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}

	return cli, nil
}

// envelopeResult relays a result envelope verbatim as JSON text. Failure
// envelopes ride the same channel as successes; callers branch on the
// envelope shape.
func envelopeResult(env sfapi.Envelope) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding result envelope: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

// requireID reads a mandatory integer argument.
func requireID(args sfapi.Args, key string) (int64, *mcp.CallToolResult) {
	id, ok := args.Int(key)
	if !ok {
		return 0, mcp.NewToolResultError(key + " is required")
	}

	return id, nil
}

// requireString reads a mandatory string argument.
func requireString(args sfapi.Args, key string) (string, *mcp.CallToolResult) {
	value, ok := args.String(key)
	if !ok || value == "" {
		return "", mcp.NewToolResultError(key + " is required")
	}

	return value, nil
}
