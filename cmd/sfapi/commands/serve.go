package commands

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/internal/tools"
	"github.com/superfaktura-tools/sfapi/pkg/sfclient"
)

// NewServeCommand creates the serve command, which exposes the operation
// catalog as MCP tools.
func NewServeCommand(version string) *cobra.Command {
	var (
		transport  string
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the operation catalog over the Model Context Protocol",
		Long: `Serve the invoice, client and expense tools over MCP.

With the stdio transport (the default) the process speaks MCP on standard
input/output and authenticates from the environment. With the http transport
each request may carry its own x-superfaktura-* credential headers, enabling
multi-tenant use; requests without headers fall back to the environment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			// Absent environment credentials are fine in multi-tenant
			// mode; every call then authenticates from its own context.
			sfclient.InitDefault(logger)

			mcpServer := server.NewMCPServer(
				"superfaktura",
				version,
				server.WithToolCapabilities(false),
			)

			tools.Register(mcpServer)

			switch transport {
			case constants.TransportStdio:
				if err := server.ServeStdio(mcpServer); err != nil {
					return fmt.Errorf("stdio server: %w", err)
				}

				return nil
			case constants.TransportHTTP:
				httpServer := server.NewStreamableHTTPServer(
					mcpServer,
					server.WithHTTPContextFunc(tools.HTTPContextFunc),
				)

				logger.Info("serving MCP over HTTP", map[string]interface{}{"addr": listenAddr})

				if err := httpServer.Start(listenAddr); err != nil {
					return fmt.Errorf("http server: %w", err)
				}

				return nil
			default:
				return fmt.Errorf("%w: %q", constants.ErrInvalidTransport, transport)
			}
		},
	}

	cmd.Flags().StringVar(&transport, "transport", constants.TransportStdio, "MCP transport (stdio or http)")
	cmd.Flags().StringVar(&listenAddr, "listen", constants.DefaultListenAddr, "listen address for the http transport")

	return cmd
}
