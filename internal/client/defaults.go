package client

import (
	"net/url"
	"strconv"

	"github.com/traduki-io/traduki/internal/http"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// projectOrDefault substitutes the construction-time default project for a
// zero projectID.
func projectOrDefault(httpClient *http.Client, projectID int64) int64 {
	if projectID == 0 {
		return httpClient.DefaultProjectID()
	}

	return projectID
}

// listQuery builds the query for a list call, filling in the
// construction-time default page size when the caller did not choose a
// limit.
func listQuery(httpClient *http.Client, opts *traduki.ListOptions) url.Values {
	var query url.Values
	if opts != nil {
		query = opts.ToValues()
	}

	size := httpClient.DefaultPageSize()
	if size <= 0 || query.Get("limit") != "" {
		return query
	}

	if query == nil {
		query = url.Values{}
	}

	query.Set("limit", strconv.Itoa(size))

	return query
}

// withDefaultLimit clones opts for a full-collection walk, applying the
// construction-time default page size.
func withDefaultLimit(httpClient *http.Client, opts *traduki.ListOptions) *traduki.ListOptions {
	size := httpClient.DefaultPageSize()
	if size <= 0 {
		return opts
	}

	if opts == nil {
		opts = traduki.NewListOptions()
	} else {
		opts = opts.Clone()
	}

	if opts.Limit == 0 {
		opts.Limit = size
	}

	return opts
}
