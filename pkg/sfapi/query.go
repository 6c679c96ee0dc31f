package sfapi

import (
	"fmt"
	"strconv"
	"strings"
)

// Listing defaults shared by every resource.
const (
	DefaultPage    = 1
	DefaultPerPage = 50
)

// Sort directions accepted by the listing endpoints.
const (
	DirectionAsc  = "ASC"
	DirectionDesc = "DESC"
)

// rangeModeMarker is the value of the synthetic segment that switches a
// filter field into explicit since/to range mode.
const rangeModeMarker = "3"

// ListSpec holds the per-resource listing constants: the page size ceiling,
// the default ordering, and the declared filter order.
type ListSpec struct {
	MaxPerPage       int
	DefaultSort      string
	DefaultDirection string
	// ScalarFilters are emitted in declaration order when present.
	ScalarFilters []string
	// RangeFilters are since/to groups. An active group (at least one bound
	// supplied) emits a "<field>:3" marker segment immediately before its
	// bound segments.
	RangeFilters []string
}

// Encode builds the ordered colon-delimited path segments for a listing
// call. The prefix segments page, per_page, listinfo, direction and sort are
// always present, in that order; declared filters follow.
//
// A per_page above MaxPerPage is clamped to the maximum silently: oversized
// requests degrade to the maximum with no error.
func (s ListSpec) Encode(args Args) []string {
	page, ok := args.Int("page")
	if !ok || page < 1 {
		page = DefaultPage
	}

	perPage, ok := args.Int("per_page")
	if !ok || perPage < 1 {
		perPage = DefaultPerPage
	}

	if perPage > int64(s.MaxPerPage) {
		perPage = int64(s.MaxPerPage)
	}

	listinfo := int64(1)
	if v, ok := args.Int("listinfo"); ok && v == 0 {
		listinfo = 0
	}

	direction := s.DefaultDirection
	if v, ok := args.String("direction"); ok {
		direction = v
	}

	sort := s.DefaultSort
	if v, ok := args.String("sort"); ok {
		sort = v
	}

	segments := []string{
		"page:" + strconv.FormatInt(page, 10),
		"per_page:" + strconv.FormatInt(perPage, 10),
		"listinfo:" + strconv.FormatInt(listinfo, 10),
		"direction:" + direction,
		"sort:" + sort,
	}

	for _, name := range s.ScalarFilters {
		if value, ok := args[name]; ok {
			segments = append(segments, segment(name, value))
		}
	}

	for _, field := range s.RangeFilters {
		since, hasSince := args[field+"_since"]
		until, hasTo := args[field+"_to"]

		if !hasSince && !hasTo {
			continue
		}

		segments = append(segments, field+":"+rangeModeMarker)

		if hasSince {
			segments = append(segments, segment(field+"_since", since))
		}

		if hasTo {
			segments = append(segments, segment(field+"_to", until))
		}
	}

	return segments
}

// ListPath joins the resource's listing endpoint with the encoded segments.
func ListPath(resource string, segments []string) string {
	return resource + "/index.json/" + strings.Join(segments, "/")
}

// segment renders one "key:value" path segment. Multi-value filters arrive
// already pipe-delimited by the caller and pass through unescaped; search
// values pass through as provided.
func segment(key string, value interface{}) string {
	return key + ":" + formatValue(value)
}

func formatValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}
