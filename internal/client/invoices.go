package client

import (
	"context"
	"fmt"
	"time"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/internal/http"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// invoiceSchema declares how optional invoice arguments flatten into the
// mutation payload. Renamed keys follow the wire names of the remote API.
var invoiceSchema = sfapi.EntitySchema{
	Entity: "Invoice",
	Fields: []sfapi.Field{
		{Arg: "invoice_no_formatted"},
		{Arg: "variable_symbol", Key: "variable"},
		{Arg: "constant"},
		{Arg: "specific"},
		{Arg: "order_no"},
		{Arg: "payment_type"},
		{Arg: "currency", Key: "invoice_currency"},
		{Arg: "delivery"},
		{Arg: "delivery_type"},
		{Arg: "discount"},
		{Arg: "deposit"},
		{Arg: "already_paid"},
		{Arg: "rounding"},
		{Arg: "issued_by"},
		{Arg: "issued_by_phone"},
		{Arg: "issued_by_email"},
		{Arg: "note"},
		{Arg: "header_comment"},
		{Arg: "internal_comment"},
	},
	SubEntities: []sfapi.SubEntity{
		{Arg: "invoice_items", Entity: "InvoiceItem"},
		{Arg: "invoice_setting", Entity: "InvoiceSetting"},
		{Arg: "invoice_extra", Entity: "InvoiceExtra"},
		{Arg: "my_data", Entity: "MyData"},
		{Arg: "client_data", Entity: "Client"},
		{Arg: "tags", Entity: "Tag"},
	},
}

// invoiceListSpec holds the invoice listing constants.
var invoiceListSpec = sfapi.ListSpec{
	MaxPerPage:       constants.InvoicesMaxPerPage,
	DefaultSort:      "regular_count",
	DefaultDirection: sfapi.DirectionDesc,
	ScalarFilters:    []string{"status", "type", "client_id", "search"},
	RangeFilters:     []string{"created", "modified", "delivery"},
}

// InvoicesClient implements sfapi.InvoicesClient.
type InvoicesClient struct {
	httpClient *http.Client
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(httpClient *http.Client) *InvoicesClient {
	return &InvoicesClient{httpClient: httpClient}
}

// Create implements sfapi.InvoicesClient.Create. The issue date defaults to
// today and the due date to the issue date.
func (c *InvoicesClient) Create(ctx context.Context, args sfapi.Args) sfapi.Envelope {
	created, ok := args.String("created")
	if !ok {
		created = time.Now().Format("2006-01-02")
	}

	due, ok := args.String("due")
	if !ok {
		due = created
	}

	required := map[string]interface{}{
		"client_id": args["client_id"],
		"name":      args["name"],
		"created":   created,
		"due":       due,
	}

	payload := invoiceSchema.Build(required, args)

	return c.httpClient.Post(ctx, "invoices/create", payload)
}

// List implements sfapi.InvoicesClient.List.
func (c *InvoicesClient) List(ctx context.Context, args sfapi.Args) sfapi.Envelope {
	segments := invoiceListSpec.Encode(args)

	return c.httpClient.Get(ctx, sfapi.ListPath("invoices", segments))
}

// Get implements sfapi.InvoicesClient.Get.
func (c *InvoicesClient) Get(ctx context.Context, id int64) sfapi.Envelope {
	return c.httpClient.Get(ctx, fmt.Sprintf("invoices/view/%d.json", id))
}

// Edit implements sfapi.InvoicesClient.Edit. The payload arrives pre-shaped
// (already keyed by entity name); only the id is merged in.
func (c *InvoicesClient) Edit(ctx context.Context, id int64, payload map[string]interface{}) sfapi.Envelope {
	merged := sfapi.MergeID(payload, "Invoice", id)

	return c.httpClient.Post(ctx, "invoices/edit", merged)
}

// Delete implements sfapi.InvoicesClient.Delete.
func (c *InvoicesClient) Delete(ctx context.Context, id int64) sfapi.Envelope {
	return c.httpClient.Delete(ctx, fmt.Sprintf("invoices/delete/%d", id))
}

// Send implements sfapi.InvoicesClient.Send. With an empty email the remote
// service mails the client's address on file.
func (c *InvoicesClient) Send(ctx context.Context, id int64, email string) sfapi.Envelope {
	invoice := map[string]interface{}{"id": id}
	if email != "" {
		invoice["email"] = email
	}

	return c.httpClient.Post(ctx, "invoices/send", map[string]interface{}{"Invoice": invoice})
}

// MarkPaid implements sfapi.InvoicesClient.MarkPaid. The payment date
// defaults to today and the payment type to a bank transfer.
func (c *InvoicesClient) MarkPaid(ctx context.Context, id int64, amount float64, args sfapi.Args) sfapi.Envelope {
	paymentDate, ok := args.String("payment_date")
	if !ok {
		paymentDate = time.Now().Format("2006-01-02")
	}

	paymentType, ok := args.String("payment_type")
	if !ok {
		paymentType = "transfer"
	}

	payment := map[string]interface{}{
		"invoice_id":   id,
		"amount":       amount,
		"payment_type": paymentType,
		"created":      paymentDate,
	}

	if currency, ok := args.String("currency"); ok {
		payment["currency"] = currency
	}

	return c.httpClient.Post(ctx, "invoice_payments/add", map[string]interface{}{"InvoicePayment": payment})
}

// SetLanguage implements sfapi.InvoicesClient.SetLanguage.
func (c *InvoicesClient) SetLanguage(ctx context.Context, id int64, lang string) sfapi.Envelope {
	return c.httpClient.Get(ctx, fmt.Sprintf("invoices/setinvoicelanguage/%d/lang:%s", id, lang))
}

// GetPDF implements sfapi.InvoicesClient.GetPDF. The remote service exposes
// PDFs only through tokenized links, so this fetches the invoice detail and
// assembles the public URL from its access token.
func (c *InvoicesClient) GetPDF(ctx context.Context, id int64, lang string) sfapi.Envelope {
	if lang == "" {
		lang = "slo"
	}

	detail := c.Get(ctx, id)
	if detail.Failed() {
		return detail
	}

	invoice, ok := detail["Invoice"].(map[string]interface{})
	if !ok {
		return sfapi.FailureEnvelope("invoice detail response has no Invoice entity")
	}

	token, ok := invoice["token"].(string)
	if !ok || token == "" {
		return sfapi.FailureEnvelope("invoice detail response has no access token")
	}

	return sfapi.Envelope{
		"invoice_id": id,
		"pdf_url":    fmt.Sprintf("%s/%s/invoices/pdf/%d/token:%s", c.httpClient.BaseURL(), lang, id, token),
	}
}
