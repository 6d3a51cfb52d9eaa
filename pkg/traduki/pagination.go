package traduki

import (
	"context"

	"github.com/traduki-io/traduki/internal/constants"
)

// Page size bounds re-exported for callers.
const (
	DefaultPageSize = constants.DefaultPageSize
	MaxPageSize     = constants.MaxPageSize
)

// PageFunc fetches one page of a collection. Every list method on a resource
// client satisfies this shape.
type PageFunc[T any] func(ctx context.Context, opts *ListOptions) (*ListResponse[T], error)

// PaginationOptions tunes an exhaustive walk.
type PaginationOptions struct {
	// PageSize is the per-page limit, capped at MaxPageSize. 0 means
	// DefaultPageSize.
	PageSize int

	// MaxPages bounds FetchAllPages. 0 means unbounded.
	MaxPages int

	// Logger receives a warning when a server returns more items than
	// requested. Optional.
	Logger Logger
}

// PaginationIterator lazily walks an arbitrarily large collection by
// repeatedly fetching pages and advancing the offset by the returned item
// count. The walk terminates exactly when a page comes back shorter than the
// requested page size. An iterator is read-once; it cannot be restarted.
type PaginationIterator[T any] struct {
	ctx      context.Context
	fetch    PageFunc[T]
	opts     *ListOptions
	pageSize int
	logger   Logger

	offset int
	buffer []T
	done   bool
	err    error
}

// NewPaginationIterator creates an iterator over the collection served by
// fetch. A Page value in opts overrides the starting offset:
// offset = (page-1) * limit.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFunc[T], opts *ListOptions) *PaginationIterator[T] {
	opts = opts.Clone()

	pageSize := opts.Limit
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := opts.Offset
	if opts.Page > 0 {
		offset = (opts.Page - 1) * pageSize
	}

	// The iterator owns offset computation from here on.
	opts.Page = 0

	return &PaginationIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		opts:     opts,
		pageSize: pageSize,
		offset:   offset,
	}
}

// WithLogger attaches a logger for protocol-violation warnings.
func (it *PaginationIterator[T]) WithLogger(logger Logger) *PaginationIterator[T] {
	it.logger = logger

	return it
}

// HasNext reports whether another item is available, fetching the next page
// when the buffer is empty. After an error HasNext returns false; the error
// surfaces from Next.
func (it *PaginationIterator[T]) HasNext() bool {
	if len(it.buffer) > 0 {
		return true
	}

	if it.done || it.err != nil {
		return false
	}

	it.fetchNext()

	return len(it.buffer) > 0
}

// Next returns the next item, or ErrNoMoreItems after exhaustion, or the
// underlying fetch error.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// All drains the remaining items into a slice.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, it.err
}

// ForEach applies fn to each remaining item, stopping on the first error.
func (it *PaginationIterator[T]) ForEach(fn func(item T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return it.err
}

func (it *PaginationIterator[T]) fetchNext() {
	req := it.opts.Clone()
	req.Offset = it.offset
	req.Limit = it.pageSize

	page, err := it.fetch(it.ctx, req)
	if err != nil {
		it.err = err
		it.done = true

		return
	}

	items := page.Data

	// A page longer than requested is a server protocol violation: truncate
	// instead of looping.
	if len(items) > it.pageSize {
		if it.logger != nil {
			it.logger.Warn("server returned more items than requested", map[string]any{
				"requested": it.pageSize,
				"returned":  len(items),
			})
		}

		items = items[:it.pageSize]
	}

	it.buffer = append(it.buffer, items...)
	it.offset += len(items)

	if len(items) < it.pageSize {
		it.done = true
	}
}

// FetchAllPages collects every item of a collection, honoring the MaxPages
// bound in options.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], opts *ListOptions, options *PaginationOptions) ([]T, error) {
	if options == nil {
		options = &PaginationOptions{}
	}

	opts = opts.Clone()
	if options.PageSize > 0 {
		opts.Limit = options.PageSize
	}

	it := NewPaginationIterator(ctx, fetch, opts).WithLogger(options.Logger)

	var items []T

	pages := 0

	for !it.done || len(it.buffer) > 0 {
		if !it.HasNext() {
			break
		}

		// Drain exactly one buffered page per loop turn.
		for len(it.buffer) > 0 {
			item, err := it.Next()
			if err != nil {
				return items, err
			}

			items = append(items, item)
		}

		pages++
		if options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}
	}

	if it.err != nil {
		return items, it.err
	}

	return items, nil
}

// PageResult is one streamed page: its items or the error that ended the walk.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages walks the collection in a goroutine, delivering one PageResult
// per page. The channel closes after the terminal page, the first error, or
// context cancellation.
func StreamPages[T any](ctx context.Context, fetch PageFunc[T], opts *ListOptions, options *PaginationOptions) <-chan PageResult[T] {
	if options == nil {
		options = &PaginationOptions{}
	}

	opts = opts.Clone()
	if options.PageSize > 0 {
		opts.Limit = options.PageSize
	}

	it := NewPaginationIterator(ctx, fetch, opts).WithLogger(options.Logger)
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		pages := 0

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if !it.HasNext() {
				if it.err != nil {
					results <- PageResult[T]{Err: it.err}
				}

				return
			}

			page := make([]T, len(it.buffer))
			copy(page, it.buffer)
			it.buffer = it.buffer[:0]

			select {
			case results <- PageResult[T]{Items: page}:
			case <-ctx.Done():
				return
			}

			pages++
			if options.MaxPages > 0 && pages >= options.MaxPages {
				return
			}
		}
	}()

	return results
}
