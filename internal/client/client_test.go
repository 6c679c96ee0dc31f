package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superfaktura-tools/sfapi/internal/client"
	"github.com/superfaktura-tools/sfapi/internal/constants"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// recordedRequest captures what the resource clients put on the wire.
type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// newTestClient builds a client against a capture server that answers every
// request with an empty success envelope.
func newTestClient(t *testing.T) (sfapi.Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		recorded.Method = request.Method
		recorded.Path = request.URL.Path

		recorded.Body = nil
		if request.Body != nil {
			_ = json.NewDecoder(request.Body).Decode(&recorded.Body)
		}

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"error": 0})
	}))
	t.Cleanup(server.Close)

	cli, err := client.New(&sfapi.Config{
		BaseURL: server.URL,
		Email:   "user@example.com",
		APIKey:  "secret",
	})
	require.NoError(t, err)

	return cli, recorded
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		assert.ErrorIs(t, err, constants.ErrConfigRequired)
	})

	t.Run("missing credentials name the fields", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&sfapi.Config{Email: "user@example.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, sfapi.ErrMissingCredentials)
		assert.Contains(t, err.Error(), "api key")
		assert.NotContains(t, err.Error(), "email")
	})

	t.Run("unknown country fails before any network access", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&sfapi.Config{
			Email:   "user@example.com",
			APIKey:  "secret",
			Country: "de",
		})
		assert.ErrorIs(t, err, sfapi.ErrUnknownCountry)
	})

	t.Run("country selects the base URL", func(t *testing.T) {
		t.Parallel()

		cli, err := client.New(&sfapi.Config{
			Email:   "user@example.com",
			APIKey:  "secret",
			Country: "cz",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://moje.superfaktura.cz", cli.BaseURL())
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestInvoicesClient(t *testing.T) {
	t.Parallel()
	t.Run("create defaults the issue and due dates", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		env := cli.Invoices().Create(context.Background(), sfapi.Args{
			"client_id":       float64(7),
			"name":            "Services 2024-06",
			"variable_symbol": "20240001",
			"invoice_items": []interface{}{
				map[string]interface{}{"name": "Consulting", "unit_price": 100.0},
			},
		})
		require.False(t, env.Failed())
		assert.Equal(t, http.MethodPost, recorded.Method)
		assert.Equal(t, "/invoices/create", recorded.Path)

		invoice, ok := recorded.Body["Invoice"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Services 2024-06", invoice["name"])
		assert.Equal(t, "20240001", invoice["variable"])
		assert.NotEmpty(t, invoice["created"])
		assert.Equal(t, invoice["created"], invoice["due"])
		assert.Contains(t, recorded.Body, "InvoiceItem")
	})

	t.Run("list encodes the colon-delimited path", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().List(context.Background(), sfapi.Args{
			"status":        "2",
			"created_since": "2024-01-01",
		})

		assert.Equal(t, http.MethodGet, recorded.Method)
		assert.Equal(t,
			"/invoices/index.json/page:1/per_page:50/listinfo:1/direction:DESC/sort:regular_count"+
				"/status:2/created:3/created_since:2024-01-01",
			recorded.Path)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().Get(context.Background(), 15)
		assert.Equal(t, "/invoices/view/15.json", recorded.Path)
	})

	t.Run("edit merges the id into the entity", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().Edit(context.Background(), 15, map[string]interface{}{
			"Invoice": map[string]interface{}{"name": "Renamed"},
		})

		assert.Equal(t, "/invoices/edit", recorded.Path)

		invoice, ok := recorded.Body["Invoice"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(15), invoice["id"])
		assert.Equal(t, "Renamed", invoice["name"])
	})

	t.Run("send without email omits the field", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().Send(context.Background(), 15, "")

		invoice, ok := recorded.Body["Invoice"].(map[string]interface{})
		require.True(t, ok)
		assert.NotContains(t, invoice, "email")
	})

	t.Run("mark paid defaults payment type and date", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().MarkPaid(context.Background(), 15, 120.50, sfapi.Args{})

		assert.Equal(t, "/invoice_payments/add", recorded.Path)

		payment, ok := recorded.Body["InvoicePayment"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(15), payment["invoice_id"])
		assert.Equal(t, 120.50, payment["amount"])
		assert.Equal(t, "transfer", payment["payment_type"])
		assert.NotEmpty(t, payment["created"])
	})

	t.Run("set language", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().SetLanguage(context.Background(), 15, "cze")
		assert.Equal(t, "/invoices/setinvoicelanguage/15/lang:cze", recorded.Path)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Invoices().Delete(context.Background(), 15)
		assert.Equal(t, http.MethodDelete, recorded.Method)
		assert.Equal(t, "/invoices/delete/15", recorded.Path)
	})
}

func TestInvoicesClient_GetPDF(t *testing.T) {
	t.Parallel()
	t.Run("assembles the tokenized link from the detail", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/invoices/view/15.json", request.URL.Path)
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"Invoice": map[string]interface{}{"id": "15", "token": "abc123"},
			})
		}))
		defer server.Close()

		cli, err := client.New(&sfapi.Config{
			BaseURL: server.URL,
			Email:   "user@example.com",
			APIKey:  "secret",
		})
		require.NoError(t, err)

		env := cli.Invoices().GetPDF(context.Background(), 15, "")
		require.False(t, env.Failed())
		assert.Equal(t, server.URL+"/slo/invoices/pdf/15/token:abc123", env["pdf_url"])
	})

	t.Run("missing token fails in the envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"Invoice": map[string]interface{}{"id": "15"},
			})
		}))
		defer server.Close()

		cli, err := client.New(&sfapi.Config{
			BaseURL: server.URL,
			Email:   "user@example.com",
			APIKey:  "secret",
		})
		require.NoError(t, err)

		env := cli.Invoices().GetPDF(context.Background(), 15, "")
		assert.True(t, env.Failed())
	})
}

func TestClientsClient(t *testing.T) {
	t.Parallel()
	t.Run("create renames zip_code", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Clients().Create(context.Background(), sfapi.Args{
			"name":     "Acme s.r.o.",
			"zip_code": "81101",
			"ico":      "12345678",
		})

		assert.Equal(t, "/clients/create", recorded.Path)

		entity, ok := recorded.Body["Client"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "81101", entity["zip"])
		assert.Equal(t, "12345678", entity["ico"])
		assert.NotContains(t, entity, "zip_code")
	})

	t.Run("list sorts by name ascending", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Clients().List(context.Background(), sfapi.Args{"per_page": 500})

		assert.Equal(t,
			"/clients/index.json/page:1/per_page:100/listinfo:1/direction:ASC/sort:name",
			recorded.Path)
	})

	t.Run("update merges flat fields under the entity", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Clients().Update(context.Background(), 3, map[string]interface{}{
			"email": "new@example.com",
		})

		assert.Equal(t, http.MethodPatch, recorded.Method)
		assert.Equal(t, "/clients/edit/3", recorded.Path)

		entity, ok := recorded.Body["Client"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(3), entity["id"])
		assert.Equal(t, "new@example.com", entity["email"])
	})
}

func TestExpensesClient(t *testing.T) {
	t.Parallel()
	t.Run("create renames fields and defaults the date", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Expenses().Create(context.Background(), sfapi.Args{
			"name":            "Office rent",
			"amount":          500.0,
			"category_id":     float64(12),
			"document_number": "FA-99",
			"description":     "June rent",
		})

		assert.Equal(t, "/expenses/add", recorded.Path)

		entity, ok := recorded.Body["Expense"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(12), entity["expense_category_id"])
		assert.Equal(t, "FA-99", entity["document_no"])
		assert.Equal(t, "June rent", entity["comment"])
		assert.NotEmpty(t, entity["created"])
	})

	t.Run("list sorts by created descending", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Expenses().List(context.Background(), sfapi.Args{})

		assert.Equal(t,
			"/expenses/index.json/page:1/per_page:50/listinfo:1/direction:DESC/sort:created",
			recorded.Path)
	})

	t.Run("edit posts the merged payload", func(t *testing.T) {
		t.Parallel()

		cli, recorded := newTestClient(t)

		_ = cli.Expenses().Edit(context.Background(), 8, map[string]interface{}{
			"Expense": map[string]interface{}{"name": "Adjusted"},
		})

		assert.Equal(t, "/expenses/edit", recorded.Path)

		entity, ok := recorded.Body["Expense"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(8), entity["id"])
	})
}
