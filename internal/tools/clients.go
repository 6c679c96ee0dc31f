package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

func registerClientTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("create_client",
		mcp.WithDescription("Create a new client in the address book."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Client/company name")),
		mcp.WithString("email", mcp.Description("Client email address")),
		mcp.WithString("phone", mcp.Description("Client phone number")),
		mcp.WithString("fax", mcp.Description("Client fax number")),
		mcp.WithString("address", mcp.Description("Street address")),
		mcp.WithString("city", mcp.Description("City")),
		mcp.WithString("zip_code", mcp.Description("ZIP/postal code")),
		mcp.WithString("country", mcp.Description("Country name")),
		mcp.WithNumber("country_id", mcp.Description("Country ID in the remote codebook")),
		mcp.WithString("ico", mcp.Description("Company registration number (IČO)")),
		mcp.WithString("dic", mcp.Description("Tax ID number (DIČ)")),
		mcp.WithString("ic_dph", mcp.Description("VAT ID number (IČ DPH)")),
		mcp.WithString("bank_account", mcp.Description("Bank account number")),
		mcp.WithString("iban", mcp.Description("IBAN")),
		mcp.WithString("swift", mcp.Description("SWIFT/BIC code")),
		mcp.WithString("comment", mcp.Description("Free-form comment")),
		mcp.WithNumber("match_address", mcp.Description("1 to match an existing client by address, 0 otherwise")),
		mcp.WithNumber("update_addressbook", mcp.Description("1 to update the address book entry on invoice, 0 otherwise")),
		mcp.WithString("default_variable", mcp.Description("Default variable symbol for the client")),
		mcp.WithNumber("due_date_default", mcp.Description("Default due period in days")),
		mcp.WithNumber("discount", mcp.Description("Default discount in percent")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		if _, errResult := requireString(args, "name"); errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Clients().Create(ctx, args))
	})

	s.AddTool(mcp.NewTool("list_clients",
		mcp.WithDescription("List clients with pagination and optional filtering."),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (clamped to 100)")),
		mcp.WithString("search", mcp.Description("Full-text search value, passed through as provided")),
		mcp.WithString("char_filter", mcp.Description("Initial-letter filter")),
		mcp.WithString("created_since", mcp.Description("Creation date range start (YYYY-MM-DD)")),
		mcp.WithString("created_to", mcp.Description("Creation date range end (YYYY-MM-DD)")),
		mcp.WithString("modified_since", mcp.Description("Modification date range start (YYYY-MM-DD)")),
		mcp.WithString("modified_to", mcp.Description("Modification date range end (YYYY-MM-DD)")),
		mcp.WithString("sort", mcp.Description("Sort field (default name)")),
		mcp.WithString("direction", mcp.Description("Sort direction ASC or DESC (default ASC)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Clients().List(ctx, sfapi.Args(req.GetArguments())))
	})

	s.AddTool(mcp.NewTool("get_client",
		mcp.WithDescription("Get detailed information about a specific client."),
		mcp.WithNumber("client_id", mcp.Required(), mcp.Description("ID of the client")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "client_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Clients().Get(ctx, id))
	})

	s.AddTool(mcp.NewTool("update_client",
		mcp.WithDescription("Update client information."),
		mcp.WithNumber("client_id", mcp.Required(), mcp.Description("ID of the client to update")),
		mcp.WithObject("updates", mcp.Required(), mcp.Description("Fields to update (name, email, phone, address, ...)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "client_id")
		if errResult != nil {
			return errResult, nil
		}

		updates, ok := args["updates"].(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("updates is required"), nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Clients().Update(ctx, id, updates))
	})

	s.AddTool(mcp.NewTool("delete_client",
		mcp.WithDescription("Delete a client."),
		mcp.WithNumber("client_id", mcp.Required(), mcp.Description("ID of the client to delete")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "client_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Clients().Delete(ctx, id))
	})
}
