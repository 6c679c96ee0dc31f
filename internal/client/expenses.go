package client

import (
	"context"
	"fmt"
	"time"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/internal/http"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

var expenseSchema = sfapi.EntitySchema{
	Entity: "Expense",
	Fields: []sfapi.Field{
		{Arg: "amount"},
		{Arg: "vat"},
		{Arg: "due"},
		{Arg: "currency"},
		{Arg: "category_id", Key: "expense_category_id"},
		{Arg: "client_id"},
		{Arg: "type"},
		{Arg: "document_number", Key: "document_no"},
		{Arg: "variable_symbol", Key: "variable"},
		{Arg: "constant"},
		{Arg: "specific"},
		{Arg: "description", Key: "comment"},
		{Arg: "already_paid"},
	},
	SubEntities: []sfapi.SubEntity{
		{Arg: "expense_items", Entity: "ExpenseItem"},
		{Arg: "tags", Entity: "Tag"},
	},
}

var expenseListSpec = sfapi.ListSpec{
	MaxPerPage:       constants.ExpensesMaxPerPage,
	DefaultSort:      "created",
	DefaultDirection: sfapi.DirectionDesc,
	ScalarFilters:    []string{"status", "client_id", "category_id", "type", "search"},
	RangeFilters:     []string{"created", "modified"},
}

// ExpensesClient implements sfapi.ExpensesClient.
type ExpensesClient struct {
	httpClient *http.Client
}

// NewExpensesClient creates a new expenses client.
func NewExpensesClient(httpClient *http.Client) *ExpensesClient {
	return &ExpensesClient{httpClient: httpClient}
}

// Create implements sfapi.ExpensesClient.Create. The expense date defaults
// to today.
func (c *ExpensesClient) Create(ctx context.Context, args sfapi.Args) sfapi.Envelope {
	created, ok := args.String("created")
	if !ok {
		created = time.Now().Format("2006-01-02")
	}

	required := map[string]interface{}{
		"name":    args["name"],
		"created": created,
	}

	payload := expenseSchema.Build(required, args)

	return c.httpClient.Post(ctx, "expenses/add", payload)
}

// List implements sfapi.ExpensesClient.List.
func (c *ExpensesClient) List(ctx context.Context, args sfapi.Args) sfapi.Envelope {
	segments := expenseListSpec.Encode(args)

	return c.httpClient.Get(ctx, sfapi.ListPath("expenses", segments))
}

// Get implements sfapi.ExpensesClient.Get.
func (c *ExpensesClient) Get(ctx context.Context, id int64) sfapi.Envelope {
	return c.httpClient.Get(ctx, fmt.Sprintf("expenses/view/%d.json", id))
}

// Edit implements sfapi.ExpensesClient.Edit.
func (c *ExpensesClient) Edit(ctx context.Context, id int64, payload map[string]interface{}) sfapi.Envelope {
	merged := sfapi.MergeID(payload, "Expense", id)

	return c.httpClient.Post(ctx, "expenses/edit", merged)
}

// Delete implements sfapi.ExpensesClient.Delete.
func (c *ExpensesClient) Delete(ctx context.Context, id int64) sfapi.Envelope {
	return c.httpClient.Delete(ctx, fmt.Sprintf("expenses/delete/%d", id))
}
