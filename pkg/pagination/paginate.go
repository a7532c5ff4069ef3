// Package pagination runs page queries against any Collection and computes
// page metadata. It keeps no state between calls.
package pagination

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is what a Collection receives for one page.
type Query struct {
	Sort     []SortField
	Skip     int
	Limit    int
	Select   []string
	Populate []string
}

// Collection is the store port. Implementations must be safe for concurrent use.
type Collection[T any] interface {
	Find(ctx context.Context, filter Filter, q Query) ([]T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Meta describes where a page sits in the full result set.
type Meta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// Result is one page plus its metadata.
type Result[T any] struct {
	Results    []T
	Pagination Meta
}

// Paginate fetches one page and the total count concurrently. If either call
// fails the shared context is cancelled and the first error is returned as-is.
func Paginate[T any](ctx context.Context, coll Collection[T], filter Filter, opts Options) (*Result[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	q := Query{
		Sort:     opts.Sort,
		Skip:     opts.Skip(),
		Limit:    opts.Limit,
		Select:   opts.Select,
		Populate: opts.Populate,
	}

	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = coll.Find(gctx, filter, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = coll.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}
	return &Result[T]{
		Results:    items,
		Pagination: NewMeta(total, opts.Page, opts.Limit, q.Skip, len(items)),
	}, nil
}

// NewMeta computes page metadata. hasPrev looks at the requested page number,
// not at the skip offset.
func NewMeta(total int64, page, limit, skip, returned int) Meta {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: int64(skip+returned) < total,
		HasPrev: page > 1,
	}
}
