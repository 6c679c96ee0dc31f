package client

import (
	"context"
	"fmt"

	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/internal/http"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

var clientSchema = sfapi.EntitySchema{
	Entity: "Client",
	Fields: []sfapi.Field{
		{Arg: "email"},
		{Arg: "phone"},
		{Arg: "fax"},
		{Arg: "address"},
		{Arg: "city"},
		{Arg: "zip_code", Key: "zip"},
		{Arg: "country"},
		{Arg: "country_id"},
		{Arg: "ico"},
		{Arg: "dic"},
		{Arg: "ic_dph"},
		{Arg: "bank_account"},
		{Arg: "iban"},
		{Arg: "swift"},
		{Arg: "comment"},
		{Arg: "match_address"},
		{Arg: "update_addressbook"},
		{Arg: "default_variable"},
		{Arg: "due_date_default"},
		{Arg: "discount"},
	},
}

var clientListSpec = sfapi.ListSpec{
	MaxPerPage:       constants.ClientsMaxPerPage,
	DefaultSort:      "name",
	DefaultDirection: sfapi.DirectionAsc,
	ScalarFilters:    []string{"search", "char_filter"},
	RangeFilters:     []string{"created", "modified"},
}

// ClientsClient implements sfapi.ClientsClient.
type ClientsClient struct {
	httpClient *http.Client
}

// NewClientsClient creates a new clients client.
func NewClientsClient(httpClient *http.Client) *ClientsClient {
	return &ClientsClient{httpClient: httpClient}
}

// Create implements sfapi.ClientsClient.Create.
func (c *ClientsClient) Create(ctx context.Context, args sfapi.Args) sfapi.Envelope {
	required := map[string]interface{}{
		"name": args["name"],
	}

	payload := clientSchema.Build(required, args)

	return c.httpClient.Post(ctx, "clients/create", payload)
}

// List implements sfapi.ClientsClient.List.
func (c *ClientsClient) List(ctx context.Context, args sfapi.Args) sfapi.Envelope {
	segments := clientListSpec.Encode(args)

	return c.httpClient.Get(ctx, sfapi.ListPath("clients", segments))
}

// Get implements sfapi.ClientsClient.Get.
func (c *ClientsClient) Get(ctx context.Context, id int64) sfapi.Envelope {
	return c.httpClient.Get(ctx, fmt.Sprintf("clients/view/%d.json", id))
}

// Update implements sfapi.ClientsClient.Update. Updates arrive as flat field
// values and are merged under the Client entity together with the id.
func (c *ClientsClient) Update(ctx context.Context, id int64, updates map[string]interface{}) sfapi.Envelope {
	payload := sfapi.MergeID(map[string]interface{}{"Client": updates}, "Client", id)

	return c.httpClient.Patch(ctx, fmt.Sprintf("clients/edit/%d", id), payload)
}

// Delete implements sfapi.ClientsClient.Delete.
func (c *ClientsClient) Delete(ctx context.Context, id int64) sfapi.Envelope {
	return c.httpClient.Delete(ctx, fmt.Sprintf("clients/delete/%d", id))
}
