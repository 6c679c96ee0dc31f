package sfapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/superfaktura-tools/sfapi/pkg/sfapi"
)

func invoiceSpec() sfapi.ListSpec {
	return sfapi.ListSpec{
		MaxPerPage:       200,
		DefaultSort:      "regular_count",
		DefaultDirection: sfapi.DirectionDesc,
		ScalarFilters:    []string{"status", "client_id", "type", "search"},
		RangeFilters:     []string{"created", "delivery", "due", "paiddate"},
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestListSpec_Encode(t *testing.T) {
	t.Parallel()
	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{})

		assert.Equal(t, []string{
			"page:1",
			"per_page:50",
			"listinfo:1",
			"direction:DESC",
			"sort:regular_count",
		}, segments)
	})

	t.Run("per_page clamped silently to the maximum", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{"per_page": 500})

		assert.Contains(t, segments, "per_page:200")
		assert.NotContains(t, segments, "per_page:500")
	})

	t.Run("full listing with filters and a range group", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{
			"page":          1,
			"per_page":      500,
			"status":        "2",
			"created_since": "2024-01-01",
		})

		assert.Equal(t, []string{
			"page:1",
			"per_page:200",
			"listinfo:1",
			"direction:DESC",
			"sort:regular_count",
			"status:2",
			"created:3",
			"created_since:2024-01-01",
		}, segments)
	})

	t.Run("json-decoded numbers arrive as float64", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{
			"page":     float64(3),
			"per_page": float64(25),
		})

		assert.Contains(t, segments, "page:3")
		assert.Contains(t, segments, "per_page:25")
	})

	t.Run("range group with both bounds", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{
			"due_since": "2024-02-01",
			"due_to":    "2024-02-29",
		})

		assert.Equal(t, []string{
			"page:1",
			"per_page:50",
			"listinfo:1",
			"direction:DESC",
			"sort:regular_count",
			"due:3",
			"due_since:2024-02-01",
			"due_to:2024-02-29",
		}, segments)
	})

	t.Run("range group with only the upper bound", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{"created_to": "2024-06-30"})

		assert.Contains(t, segments, "created:3")
		assert.Contains(t, segments, "created_to:2024-06-30")
		assert.NotContains(t, segments, "created_since:")
	})

	t.Run("inactive range group emits nothing", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{"status": "3"})

		for _, seg := range segments {
			assert.NotContains(t, seg, "created")
		}
	})

	t.Run("scalar filters keep declaration order", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{
			"search":    "acme",
			"status":    "1|2",
			"client_id": 42,
		})

		assert.Equal(t, []string{
			"page:1",
			"per_page:50",
			"listinfo:1",
			"direction:DESC",
			"sort:regular_count",
			"status:1|2",
			"client_id:42",
			"search:acme",
		}, segments)
	})

	t.Run("listinfo can be disabled explicitly", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{"listinfo": 0})

		assert.Contains(t, segments, "listinfo:0")
	})

	t.Run("direction and sort overrides", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{
			"direction": sfapi.DirectionAsc,
			"sort":      "created",
		})

		assert.Contains(t, segments, "direction:ASC")
		assert.Contains(t, segments, "sort:created")
	})

	t.Run("invalid page falls back to the default", func(t *testing.T) {
		t.Parallel()

		segments := invoiceSpec().Encode(sfapi.Args{"page": 0})

		assert.Contains(t, segments, "page:1")
	})
}

func TestListPath(t *testing.T) {
	t.Parallel()

	path := sfapi.ListPath("invoices", []string{"page:1", "per_page:50"})
	assert.Equal(t, "invoices/index.json/page:1/per_page:50", path)
}
