package repository

import (
	"context"

	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// Counter counts rows of one collection matching a filter. Every collection
// repository satisfies it through pagination.Collection.
type Counter interface {
	Count(ctx context.Context, filter pagination.Filter) (int64, error)
}
