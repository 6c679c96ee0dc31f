package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sfhttp "github.com/superfaktura-tools/sfapi/internal/http"
	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func testCredentials() sfapi.Credentials {
	return sfapi.Credentials{
		Email:  "user@example.com",
		APIKey: "secret+key",
		Module: sfapi.ModuleID,
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request decodes the JSON object", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/invoices/view/1.json", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "sfapi-go", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"error": 0,
				"Invoice": map[string]interface{}{
					"id": "1", "name": "Services",
				},
			})
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials())

		env := client.Get(context.Background(), "invoices/view/1.json")
		require.False(t, env.Failed())

		invoice, ok := env["Invoice"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "Services", invoice["name"])
	})

	t.Run("authorization header carries the escaped SFAPI tuple", func(t *testing.T) {
		t.Parallel()

		var authorization string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorization = request.Header.Get("Authorization")
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials())
		_ = client.Get(context.Background(), "invoices/index.json")

		assert.Equal(t, "SFAPI email=user%40example.com&apikey=secret%2Bkey&module="+sfapi.ModuleID, authorization)
	})

	t.Run("company id is appended only when set", func(t *testing.T) {
		t.Parallel()

		var authorization string

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorization = request.Header.Get("Authorization")
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		creds := testCredentials()
		creds.CompanyID = "42"
		client := sfhttp.NewClient(server.URL, creds)
		_ = client.Get(context.Background(), "clients/index.json")

		assert.Contains(t, authorization, "&company_id=42")
	})

	t.Run("post sends the JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			invoice, ok := body["Invoice"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "Services", invoice["name"])

			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"error": 0})
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials())

		env := client.Post(context.Background(), "invoices/create", map[string]interface{}{
			"Invoice": map[string]interface{}{"name": "Services"},
		})
		assert.False(t, env.Failed())
	})

	t.Run("non-2xx comes back as a failure envelope, never an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials())

		env := client.Get(context.Background(), "invoices/index.json")
		assert.True(t, env.Failed())
		assert.Contains(t, env.ErrorMessage(), "401")
	})

	t.Run("connection failure comes back as a failure envelope", func(t *testing.T) {
		t.Parallel()

		client := sfhttp.NewClient("http://127.0.0.1:1", testCredentials())

		env := client.Get(context.Background(), "invoices/index.json")
		assert.True(t, env.Failed())
		assert.NotEmpty(t, env.ErrorMessage())
	})

	t.Run("timeout comes back as a failure envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials(),
			sfhttp.WithTimeout(20*time.Millisecond))

		env := client.Get(context.Background(), "invoices/index.json")
		assert.True(t, env.Failed())
	})

	t.Run("malformed JSON comes back as a failure envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials())

		env := client.Get(context.Background(), "invoices/index.json")
		assert.True(t, env.Failed())
		assert.Contains(t, env.ErrorMessage(), "decoding response")
	})

	t.Run("bare JSON array is wrapped under data", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[{"id":"1"}]`))
		}))
		defer server.Close()

		client := sfhttp.NewClient(server.URL, testCredentials())

		env := client.Get(context.Background(), "expenses/index.json")
		require.False(t, env.Failed())

		items, ok := env["data"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("debug logging records request and response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := sfhttp.NewClient(server.URL, testCredentials(),
			sfhttp.WithLogger(logger), sfhttp.WithDebug(true))

		_ = client.Get(context.Background(), "invoices/index.json")

		require.Len(t, logger.logs, 2)
		assert.Equal(t, "http request", logger.logs[0]["msg"])
		assert.Equal(t, "http response", logger.logs[1]["msg"])
	})
}
