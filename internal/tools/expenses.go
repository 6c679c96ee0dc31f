package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

func registerExpenseTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("create_expense",
		mcp.WithDescription("Create a new expense record. Expense date defaults to today."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Expense name/description")),
		mcp.WithNumber("amount", mcp.Description("Expense amount without VAT")),
		mcp.WithNumber("vat", mcp.Description("VAT rate in percent")),
		mcp.WithString("created", mcp.Description("Expense date (YYYY-MM-DD)")),
		mcp.WithString("due", mcp.Description("Due date (YYYY-MM-DD)")),
		mcp.WithString("currency", mcp.Description("Currency code")),
		mcp.WithNumber("category_id", mcp.Description("Expense category ID")),
		mcp.WithNumber("client_id", mcp.Description("Supplier client ID")),
		mcp.WithString("type", mcp.Description("Expense type (invoice, bill, internal, contribution)")),
		mcp.WithString("document_number", mcp.Description("Supplier document number")),
		mcp.WithString("variable_symbol", mcp.Description("Variable symbol for tracking")),
		mcp.WithString("constant", mcp.Description("Constant symbol")),
		mcp.WithString("specific", mcp.Description("Specific symbol")),
		mcp.WithString("description", mcp.Description("Additional description")),
		mcp.WithNumber("already_paid", mcp.Description("1 if the expense is already paid, 0 if not")),
		mcp.WithArray("expense_items", mcp.Description("Expense items, attached verbatim")),
		mcp.WithArray("tags", mcp.Description("Tag IDs")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		if _, errResult := requireString(args, "name"); errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Expenses().Create(ctx, args))
	})

	s.AddTool(mcp.NewTool("list_expenses",
		mcp.WithDescription("List expenses with optional filtering and pagination."),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (clamped to 100)")),
		mcp.WithString("status", mcp.Description("Status filter; pipe-delimited for several")),
		mcp.WithNumber("client_id", mcp.Description("Filter by supplier client ID")),
		mcp.WithNumber("category_id", mcp.Description("Filter by expense category ID")),
		mcp.WithString("type", mcp.Description("Filter by expense type")),
		mcp.WithString("search", mcp.Description("Full-text search value, passed through as provided")),
		mcp.WithString("created_since", mcp.Description("Expense date range start (YYYY-MM-DD)")),
		mcp.WithString("created_to", mcp.Description("Expense date range end (YYYY-MM-DD)")),
		mcp.WithString("modified_since", mcp.Description("Modification date range start (YYYY-MM-DD)")),
		mcp.WithString("modified_to", mcp.Description("Modification date range end (YYYY-MM-DD)")),
		mcp.WithString("sort", mcp.Description("Sort field (default created)")),
		mcp.WithString("direction", mcp.Description("Sort direction ASC or DESC (default DESC)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Expenses().List(ctx, sfapi.Args(req.GetArguments())))
	})

	s.AddTool(mcp.NewTool("get_expense",
		mcp.WithDescription("Get detailed information about a specific expense."),
		mcp.WithNumber("expense_id", mcp.Required(), mcp.Description("ID of the expense")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "expense_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Expenses().Get(ctx, id))
	})

	s.AddTool(mcp.NewTool("edit_expense",
		mcp.WithDescription("Edit an existing expense with a partial payload."),
		mcp.WithNumber("expense_id", mcp.Required(), mcp.Description("ID of the expense to edit")),
		mcp.WithObject("expense", mcp.Description("Expense fields to change")),
		mcp.WithArray("expense_items", mcp.Description("Replacement item list")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "expense_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		payload := map[string]interface{}{}
		if expense, ok := args["expense"]; ok {
			payload["Expense"] = expense
		}

		if items, ok := args["expense_items"]; ok {
			payload["ExpenseItem"] = items
		}

		return envelopeResult(cli.Expenses().Edit(ctx, id, payload))
	})

	s.AddTool(mcp.NewTool("delete_expense",
		mcp.WithDescription("Delete an expense."),
		mcp.WithNumber("expense_id", mcp.Required(), mcp.Description("ID of the expense to delete")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "expense_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Expenses().Delete(ctx, id))
	})
}
