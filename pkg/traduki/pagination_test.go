package traduki_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traduki-io/traduki/pkg/traduki"
)

// fakeCollection serves pages of ints, recording each requested window.
type fakeCollection struct {
	items    []int
	requests [][2]int // offset, limit
	failAt   int      // fail the nth request (1-based), 0 disables
}

func (f *fakeCollection) fetch(_ context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[int], error) {
	f.requests = append(f.requests, [2]int{opts.Offset, opts.Limit})

	if f.failAt > 0 && len(f.requests) == f.failAt {
		return nil, traduki.NewTransportError("connection reset")
	}

	start := opts.Offset
	if start > len(f.items) {
		start = len(f.items)
	}

	end := start + opts.Limit
	if end > len(f.items) {
		end = len(f.items)
	}

	return &traduki.ListResponse[int]{
		Data:       f.items[start:end],
		Pagination: traduki.Pagination{Offset: start, Limit: opts.Limit},
	}, nil
}

func makeItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	return items
}

func TestPaginationIterator_WalksAllPages(t *testing.T) {
	collection := &fakeCollection{items: makeItems(23)}

	opts := traduki.NewListOptions()
	opts.Limit = 10

	it := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts)

	items, err := it.All()
	require.NoError(t, err)
	assert.Equal(t, makeItems(23), items)

	// Third page is short (3 < 10), so the walk stops without a fourth call.
	assert.Equal(t, [][2]int{{0, 10}, {10, 10}, {20, 10}}, collection.requests)
}

func TestPaginationIterator_ExactMultipleNeedsEmptyPage(t *testing.T) {
	collection := &fakeCollection{items: makeItems(20)}

	opts := traduki.NewListOptions()
	opts.Limit = 10

	items, err := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts).All()
	require.NoError(t, err)
	assert.Len(t, items, 20)

	// A full final page cannot prove exhaustion; one extra empty fetch ends it.
	assert.Len(t, collection.requests, 3)
	assert.Equal(t, [2]int{20, 10}, collection.requests[2])
}

func TestPaginationIterator_EmptyCollection(t *testing.T) {
	collection := &fakeCollection{}

	it := traduki.NewPaginationIterator(context.Background(), collection.fetch, nil)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	assert.ErrorIs(t, err, traduki.ErrNoMoreItems)
}

func TestPaginationIterator_PageOverridesOffset(t *testing.T) {
	collection := &fakeCollection{items: makeItems(30)}

	opts := traduki.NewListOptions()
	opts.Limit = 10
	opts.Page = 3
	opts.Offset = 999 // ignored when Page is set

	items, err := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts).All()
	require.NoError(t, err)
	assert.Equal(t, makeItems(30)[20:], items)
	assert.Equal(t, [2]int{20, 10}, collection.requests[0])
}

func TestPaginationIterator_PropagatesError(t *testing.T) {
	collection := &fakeCollection{items: makeItems(25), failAt: 2}

	opts := traduki.NewListOptions()
	opts.Limit = 10

	it := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts)

	items, err := it.All()
	require.Error(t, err)
	assert.Len(t, items, 10, "items before the failure are preserved")
	assert.False(t, it.HasNext(), "iterator stays terminated after an error")
}

func TestPaginationIterator_DoesNotMutateCallerOptions(t *testing.T) {
	collection := &fakeCollection{items: makeItems(5)}

	opts := traduki.NewListOptions()
	opts.Limit = 2

	_, err := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts).All()
	require.NoError(t, err)

	assert.Equal(t, 0, opts.Offset)
	assert.Equal(t, 2, opts.Limit)
}

func TestPaginationIterator_ForEachStopsOnCallbackError(t *testing.T) {
	collection := &fakeCollection{items: makeItems(10)}

	opts := traduki.NewListOptions()
	opts.Limit = 5

	seen := 0
	err := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts).
		ForEach(func(item int) error {
			seen++
			if item == 3 {
				return traduki.ErrNoMoreItems
			}

			return nil
		})

	assert.ErrorIs(t, err, traduki.ErrNoMoreItems)
	assert.Equal(t, 4, seen)
}

func TestPaginationIterator_CapsPageSize(t *testing.T) {
	collection := &fakeCollection{items: makeItems(1)}

	opts := traduki.NewListOptions()
	opts.Limit = traduki.MaxPageSize * 10

	_, err := traduki.NewPaginationIterator(context.Background(), collection.fetch, opts).All()
	require.NoError(t, err)
	assert.Equal(t, traduki.MaxPageSize, collection.requests[0][1])
}

func TestFetchAllPages_MaxPagesBound(t *testing.T) {
	collection := &fakeCollection{items: makeItems(100)}

	items, err := traduki.FetchAllPages(context.Background(), collection.fetch, nil, &traduki.PaginationOptions{
		PageSize: 10,
		MaxPages: 3,
	})
	require.NoError(t, err)
	assert.Len(t, items, 30)
}

func TestStreamPages_DeliversPages(t *testing.T) {
	collection := &fakeCollection{items: makeItems(12)}

	opts := traduki.NewListOptions()
	opts.Limit = 5

	var total int

	for result := range traduki.StreamPages(context.Background(), collection.fetch, opts, nil) {
		require.NoError(t, result.Err)
		total += len(result.Items)
	}

	assert.Equal(t, 12, total)
}

func TestStreamPages_ContextCancellation(t *testing.T) {
	collection := &fakeCollection{items: makeItems(1000)}

	ctx, cancel := context.WithCancel(context.Background())

	opts := traduki.NewListOptions()
	opts.Limit = 10

	results := traduki.StreamPages(ctx, collection.fetch, opts, nil)

	<-results
	cancel()

	// The channel closes shortly after cancellation.
	for range results { //nolint:revive
	}
}

// warnRecorder captures Warn calls; the other levels are dropped.
type warnRecorder struct {
	warnings []string
	fields   []map[string]any
}

func (l *warnRecorder) Debug(string, map[string]any) {}
func (l *warnRecorder) Info(string, map[string]any)  {}
func (l *warnRecorder) Error(string, map[string]any) {}

func (l *warnRecorder) Warn(msg string, fields map[string]any) {
	l.warnings = append(l.warnings, msg)
	l.fields = append(l.fields, fields)
}

func TestPaginationIterator_TruncatesOverLongPage(t *testing.T) {
	backing := []int{1, 2, 3, 4, 5, 6, 7, 8}
	calls := 0

	// A misbehaving server: the first page ignores the limit and returns
	// the whole collection.
	fetch := func(_ context.Context, opts *traduki.ListOptions) (*traduki.ListResponse[int], error) {
		calls++

		if calls == 1 {
			return &traduki.ListResponse[int]{Data: backing}, nil
		}

		start := opts.Offset
		if start > len(backing) {
			start = len(backing)
		}

		end := start + opts.Limit
		if end > len(backing) {
			end = len(backing)
		}

		return &traduki.ListResponse[int]{Data: backing[start:end]}, nil
	}

	logger := &warnRecorder{}

	opts := traduki.NewListOptions()
	opts.Limit = 5

	items, err := traduki.NewPaginationIterator(context.Background(), fetch, opts).
		WithLogger(logger).
		All()
	require.NoError(t, err)

	// The over-long first page is truncated to the requested 5 items and
	// the walk resumes from there.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)
	assert.Equal(t, 2, calls)

	require.Len(t, logger.warnings, 1)
	assert.Equal(t, "server returned more items than requested", logger.warnings[0])
	assert.Equal(t, 5, logger.fields[0]["requested"])
	assert.Equal(t, 8, logger.fields[0]["returned"])
}
