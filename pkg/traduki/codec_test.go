package traduki_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/traduki"
)

func TestEncode_TimestampEgressForm(t *testing.T) {
	body := map[string]any{
		"deadline": time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	data, err := traduki.Encode(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"deadline":"2024-03-15T10:30:00+00:00"}`, string(data))
}

func TestEncode_NestedDynamicTree(t *testing.T) {
	body := map[string]any{
		"name": "release",
		"nested": map[string]any{
			"when": time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("", -3600)),
		},
		"list": []any{
			map[string]any{"at": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	data, err := traduki.Encode(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "release",
		"nested": {"when": "2024-01-02T03:04:05-01:00"},
		"list": [{"at": "2024-06-01T00:00:00+00:00"}]
	}`, string(data))
}

func TestEncode_NoHTMLEscaping(t *testing.T) {
	data, err := traduki.Encode(map[string]any{"text": "a < b && c > d"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "a < b && c > d")
}

func TestDecode_PromotesTimestampsInMaps(t *testing.T) {
	v, err := traduki.Decode([]byte(`{
		"id": 7,
		"name": "demo",
		"createdAt": "2024-03-15T10:30:00+02:00"
	}`))
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)

	ts, ok := obj["createdAt"].(traduki.Timestamp)
	require.True(t, ok, "createdAt should be promoted to Timestamp")
	assert.Equal(t, "2024-03-15T10:30:00+02:00", ts.String())
	assert.Equal(t, "demo", obj["name"])
	assert.InDelta(t, float64(7), obj["id"], 0)
}

func TestDecode_ListMembersStayStrings(t *testing.T) {
	v, err := traduki.Decode([]byte(`{
		"dates": ["2024-03-15T10:30:00Z", "plain"],
		"items": [{"updatedAt": "2024-03-15T10:30:00Z"}]
	}`))
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)

	dates, ok := obj["dates"].([]any)
	require.True(t, ok)

	// Strings directly inside a list are never promoted.
	_, isString := dates[0].(string)
	assert.True(t, isString)

	// Maps nested inside lists are still walked.
	items, ok := obj["items"].([]any)
	require.True(t, ok)
	item, ok := items[0].(map[string]any)
	require.True(t, ok)
	_, isTimestamp := item["updatedAt"].(traduki.Timestamp)
	assert.True(t, isTimestamp)
}

func TestDecode_OutOfRangeShapeStaysString(t *testing.T) {
	v, err := traduki.Decode([]byte(`{"when": "2024-13-45T99:99:99Z"}`))
	require.NoError(t, err)

	obj, ok := v.(map[string]any)
	require.True(t, ok)

	// Matches the grammar but fails range validation, so it stays a string.
	_, isString := obj["when"].(string)
	assert.True(t, isString)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := traduki.Decode([]byte(`{"broken`))
	require.Error(t, err)
	assert.True(t, traduki.IsParsing(err))
}

func TestDecodeObject(t *testing.T) {
	obj, err := traduki.DecodeObject([]byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.Contains(t, obj, "a")

	_, err = traduki.DecodeObject([]byte(`[1, 2, 3]`))
	require.Error(t, err)
	assert.True(t, traduki.IsParsing(err))
}
