package traduki

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ListOptions captures the query parameters shared by every list endpoint.
// Zero values are elided from the final query string.
type ListOptions struct {
	// Offset is the 0-based index of the first item to return.
	Offset int

	// Limit is the page size, in [1, MaxPageSize]. 0 means the server default.
	Limit int

	// Page is a 1-based page number. When set it overrides Offset:
	// offset = (page-1) * limit.
	Page int

	// OrderBy is the server-defined sort expression (e.g. "-createdAt").
	OrderBy string

	// Filters holds resource-specific filter parameters. Multi-valued
	// filters are comma-joined, per the server's convention.
	Filters map[string][]string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithFilter sets a filter value, allocating the map on first use.
func (o *ListOptions) WithFilter(key string, values ...string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string][]string)
	}

	o.Filters[key] = values

	return o
}

// ToValues renders the options as URL query values. Unset entries are
// absent; list-valued filters are comma-joined.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.OrderBy != "" {
		values.Set("orderBy", o.OrderBy)
	}

	keys := make([]string, 0, len(o.Filters))
	for k := range o.Filters {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		filtered := nonEmpty(o.Filters[k])
		if len(filtered) > 0 {
			values.Set(k, strings.Join(filtered, ","))
		}
	}

	return values
}

// Clone returns a deep copy, so the paginator can advance offsets without
// mutating caller state.
func (o *ListOptions) Clone() *ListOptions {
	if o == nil {
		return NewListOptions()
	}

	clone := *o

	if o.Filters != nil {
		clone.Filters = make(map[string][]string, len(o.Filters))
		for k, v := range o.Filters {
			clone.Filters[k] = append([]string(nil), v...)
		}
	}

	return &clone
}

func nonEmpty(values []string) []string {
	out := values[:0:0]

	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}

// SetParam sets a single query parameter, eliding nil values and empty
// strings. Enumerated values render as their underlying primitive.
func SetParam(values url.Values, key string, value any) {
	if value == nil {
		return
	}

	switch v := value.(type) {
	case string:
		if v != "" {
			values.Set(key, v)
		}
	case bool:
		values.Set(key, strconv.FormatBool(v))
	case int:
		values.Set(key, strconv.Itoa(v))
	case int64:
		values.Set(key, strconv.FormatInt(v, 10))
	case Timestamp:
		values.Set(key, v.String())
	case fmt.Stringer:
		values.Set(key, v.String())
	default:
		s := fmt.Sprint(v)
		if s != "" {
			values.Set(key, s)
		}
	}
}

// JoinIDs comma-joins numeric identifiers for multi-valued filters.
func JoinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	return strings.Join(parts, ",")
}
