package traduki_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestListOptions_ToValues(t *testing.T) {
	opts := traduki.NewListOptions()
	opts.Offset = 50
	opts.Limit = 25
	opts.OrderBy = "-createdAt"
	opts.WithFilter("labelIds", "1", "2", "3")
	opts.WithFilter("croql", "")

	values := opts.ToValues()
	assert.Equal(t, "50", values.Get("offset"))
	assert.Equal(t, "25", values.Get("limit"))
	assert.Equal(t, "-createdAt", values.Get("orderBy"))
	assert.Equal(t, "1,2,3", values.Get("labelIds"))
	// Empty filter values are elided entirely.
	assert.False(t, values.Has("croql"))
}

func TestListOptions_ZeroValuesElided(t *testing.T) {
	values := traduki.NewListOptions().ToValues()
	assert.Empty(t, values.Encode())

	var nilOpts *traduki.ListOptions
	assert.Empty(t, nilOpts.ToValues().Encode())
}

func TestListOptions_Clone(t *testing.T) {
	opts := traduki.NewListOptions()
	opts.Limit = 10
	opts.WithFilter("fileId", "5")

	clone := opts.Clone()
	clone.Limit = 99
	clone.WithFilter("fileId", "6")

	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, []string{"5"}, opts.Filters["fileId"])

	var nilOpts *traduki.ListOptions
	assert.NotNil(t, nilOpts.Clone())
}

func TestSetParam(t *testing.T) {
	values := url.Values{}

	traduki.SetParam(values, "name", "demo")
	traduki.SetParam(values, "empty", "")
	traduki.SetParam(values, "nil", nil)
	traduki.SetParam(values, "count", 7)
	traduki.SetParam(values, "id", int64(123456789012))
	traduki.SetParam(values, "recursion", true)
	traduki.SetParam(values, "type", traduki.FileTypeAndroid)

	assert.Equal(t, "demo", values.Get("name"))
	assert.False(t, values.Has("empty"))
	assert.False(t, values.Has("nil"))
	assert.Equal(t, "7", values.Get("count"))
	assert.Equal(t, "123456789012", values.Get("id"))
	assert.Equal(t, "true", values.Get("recursion"))
	assert.Equal(t, "android", values.Get("type"))
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "1,2,3", traduki.JoinIDs([]int64{1, 2, 3}))
	assert.Equal(t, "42", traduki.JoinIDs([]int64{42}))
	assert.Equal(t, "", traduki.JoinIDs(nil))
}
