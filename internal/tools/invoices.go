package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

//nolint:funlen // tool declarations are long by nature
func registerInvoiceTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("create_invoice",
		mcp.WithDescription("Create a new invoice. Issue date defaults to today, due date to the issue date."),
		mcp.WithNumber("client_id", mcp.Required(), mcp.Description("ID of the client to invoice")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Invoice name/description")),
		mcp.WithArray("invoice_items", mcp.Required(), mcp.Description("Items, each with name, description, unit_price, quantity, tax")),
		mcp.WithString("created", mcp.Description("Issue date (YYYY-MM-DD)")),
		mcp.WithString("due", mcp.Description("Due date (YYYY-MM-DD)")),
		mcp.WithString("invoice_no_formatted", mcp.Description("Explicit invoice number")),
		mcp.WithString("variable_symbol", mcp.Description("Variable symbol for payment identification")),
		mcp.WithString("constant", mcp.Description("Constant symbol")),
		mcp.WithString("specific", mcp.Description("Specific symbol")),
		mcp.WithString("order_no", mcp.Description("Order number")),
		mcp.WithString("payment_type", mcp.Description("Payment type (transfer, cash, card, ...)")),
		mcp.WithString("currency", mcp.Description("Invoice currency code (EUR, CZK, ...)")),
		mcp.WithString("delivery", mcp.Description("Delivery date (YYYY-MM-DD)")),
		mcp.WithString("delivery_type", mcp.Description("Delivery type (mail, courier, personal, ...)")),
		mcp.WithNumber("discount", mcp.Description("Discount in percent")),
		mcp.WithNumber("deposit", mcp.Description("Deposit already received")),
		mcp.WithNumber("already_paid", mcp.Description("1 if the invoice is already paid, 0 if not")),
		mcp.WithNumber("rounding", mcp.Description("Rounding mode")),
		mcp.WithString("issued_by", mcp.Description("Name of the person issuing the invoice")),
		mcp.WithString("issued_by_phone", mcp.Description("Phone of the person issuing the invoice")),
		mcp.WithString("issued_by_email", mcp.Description("Email of the person issuing the invoice")),
		mcp.WithString("note", mcp.Description("Note printed on the invoice")),
		mcp.WithString("header_comment", mcp.Description("Comment above the invoice items")),
		mcp.WithString("internal_comment", mcp.Description("Internal comment, not printed")),
		mcp.WithObject("invoice_setting", mcp.Description("InvoiceSetting sub-object, attached verbatim")),
		mcp.WithObject("invoice_extra", mcp.Description("InvoiceExtra sub-object, attached verbatim")),
		mcp.WithObject("my_data", mcp.Description("Issuer company data override, attached verbatim")),
		mcp.WithObject("client_data", mcp.Description("Inline client data, attached verbatim")),
		mcp.WithArray("tags", mcp.Description("Tag IDs")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		if _, errResult := requireID(args, "client_id"); errResult != nil {
			return errResult, nil
		}

		if _, errResult := requireString(args, "name"); errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Invoices().Create(ctx, args))
	})

	s.AddTool(mcp.NewTool("list_invoices",
		mcp.WithDescription("List invoices with optional filtering and pagination."),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("per_page", mcp.Description("Results per page (clamped to 200)")),
		mcp.WithString("status", mcp.Description("Status filter (1=draft, 2=sent, 3=paid, 99=cancelled); pipe-delimited for several")),
		mcp.WithString("type", mcp.Description("Invoice type (regular, proforma, cancel, ...); pipe-delimited for several")),
		mcp.WithNumber("client_id", mcp.Description("Filter by client ID")),
		mcp.WithString("search", mcp.Description("Full-text search value, passed through as provided")),
		mcp.WithString("created_since", mcp.Description("Issue date range start (YYYY-MM-DD)")),
		mcp.WithString("created_to", mcp.Description("Issue date range end (YYYY-MM-DD)")),
		mcp.WithString("modified_since", mcp.Description("Modification date range start (YYYY-MM-DD)")),
		mcp.WithString("modified_to", mcp.Description("Modification date range end (YYYY-MM-DD)")),
		mcp.WithString("delivery_since", mcp.Description("Delivery date range start (YYYY-MM-DD)")),
		mcp.WithString("delivery_to", mcp.Description("Delivery date range end (YYYY-MM-DD)")),
		mcp.WithString("sort", mcp.Description("Sort field (default regular_count)")),
		mcp.WithString("direction", mcp.Description("Sort direction ASC or DESC (default DESC)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Invoices().List(ctx, sfapi.Args(req.GetArguments())))
	})

	s.AddTool(mcp.NewTool("get_invoice",
		mcp.WithDescription("Get detailed information about a specific invoice."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Invoices().Get(ctx, id))
	})

	s.AddTool(mcp.NewTool("send_invoice",
		mcp.WithDescription("Send an invoice via email. Without an email the client's address on file is used."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice to send")),
		mcp.WithString("email", mcp.Description("Override recipient address")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		email, _ := args.String("email")

		return envelopeResult(cli.Invoices().Send(ctx, id, email))
	})

	s.AddTool(mcp.NewTool("edit_invoice",
		mcp.WithDescription("Edit an existing invoice with a partial payload."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice to edit")),
		mcp.WithObject("invoice", mcp.Description("Invoice fields to change")),
		mcp.WithArray("invoice_items", mcp.Description("Replacement item list")),
		mcp.WithObject("invoice_setting", mcp.Description("InvoiceSetting sub-object")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		payload := map[string]interface{}{}
		if invoice, ok := args["invoice"]; ok {
			payload["Invoice"] = invoice
		}

		if items, ok := args["invoice_items"]; ok {
			payload["InvoiceItem"] = items
		}

		if setting, ok := args["invoice_setting"]; ok {
			payload["InvoiceSetting"] = setting
		}

		return envelopeResult(cli.Invoices().Edit(ctx, id, payload))
	})

	s.AddTool(mcp.NewTool("delete_invoice",
		mcp.WithDescription("Delete an invoice."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice to delete")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Invoices().Delete(ctx, id))
	})

	s.AddTool(mcp.NewTool("mark_invoice_paid",
		mcp.WithDescription("Record a payment against an invoice. Payment date defaults to today."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Payment amount")),
		mcp.WithString("payment_date", mcp.Description("Payment date (YYYY-MM-DD)")),
		mcp.WithString("payment_type", mcp.Description("Payment type (default transfer)")),
		mcp.WithString("currency", mcp.Description("Payment currency code")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		amount, ok := args["amount"].(float64)
		if !ok {
			return mcp.NewToolResultError("amount is required"), nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Invoices().MarkPaid(ctx, id, amount, args))
	})

	s.AddTool(mcp.NewTool("set_invoice_language",
		mcp.WithDescription("Set the print language of an invoice."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice")),
		mcp.WithString("lang", mcp.Required(), mcp.Description("Language code (slo, cze, eng, deu, ...)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		lang, errResult := requireString(args, "lang")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		return envelopeResult(cli.Invoices().SetLanguage(ctx, id, lang))
	})

	s.AddTool(mcp.NewTool("get_invoice_pdf",
		mcp.WithDescription("Get the tokenized public PDF link of an invoice."),
		mcp.WithNumber("invoice_id", mcp.Required(), mcp.Description("ID of the invoice")),
		mcp.WithString("language", mcp.Description("PDF language code (default slo)")),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := sfapi.Args(req.GetArguments())

		id, errResult := requireID(args, "invoice_id")
		if errResult != nil {
			return errResult, nil
		}

		cli, errResult := resolveClient(ctx)
		if errResult != nil {
			return errResult, nil
		}

		lang, _ := args.String("language")

		return envelopeResult(cli.Invoices().GetPDF(ctx, id, lang))
	})
}
