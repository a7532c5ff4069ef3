package pagination

import (
	"errors"
	"fmt"
	"math"
)

// Defaults and bounds for page requests.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// DefaultSortField is the creation timestamp every collection exposes.
	DefaultSortField = "createdAt"
)

// ErrInvalidOptions is returned by NewOptions for out-of-range values.
var ErrInvalidOptions = errors.New("pagination: invalid options")

// Direction of a sort key.
type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

// SortField orders results by Field in Direction. Earlier entries win.
type SortField struct {
	Field     string
	Direction Direction
}

// Options describes one page request.
type Options struct {
	Page     int
	Limit    int
	Sort     []SortField
	Select   []string // empty means every field
	Populate []string // relation names to expand after the page is fetched
}

// Option customizes Options in NewOptions.
type Option func(*Options)

// SortBy replaces the sort order.
func SortBy(fields ...SortField) Option {
	return func(o *Options) { o.Sort = fields }
}

// Select restricts the returned fields.
func Select(fields ...string) Option {
	return func(o *Options) { o.Select = fields }
}

// Populate expands the named relations.
func Populate(relations ...string) Option {
	return func(o *Options) { o.Populate = relations }
}

// NewOptions builds validated Options. A zero page or limit takes its default;
// negative values, a limit above MaxLimit, a page whose offset overflows or a
// sort key without a field are rejected.
func NewOptions(page, limit int, opts ...Option) (Options, error) {
	o := Options{
		Page:  page,
		Limit: limit,
		Sort:  []SortField{{Field: DefaultSortField, Direction: Desc}},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Page == 0 {
		o.Page = DefaultPage
	}
	if o.Limit == 0 {
		o.Limit = DefaultLimit
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Validate checks the invariants NewOptions enforces.
func (o Options) Validate() error {
	if o.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1, got %d", ErrInvalidOptions, o.Page)
	}
	if o.Limit < 1 || o.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d, got %d", ErrInvalidOptions, MaxLimit, o.Limit)
	}
	// Skip must fit in an int, OFFSET and the hasNext sum rely on it.
	if o.Page > math.MaxInt/o.Limit {
		return fmt.Errorf("%w: page %d is out of range", ErrInvalidOptions, o.Page)
	}
	for _, s := range o.Sort {
		if s.Field == "" {
			return fmt.Errorf("%w: empty sort field", ErrInvalidOptions)
		}
		if s.Direction != Asc && s.Direction != Desc {
			return fmt.Errorf("%w: bad direction %d for %q", ErrInvalidOptions, s.Direction, s.Field)
		}
	}
	return nil
}

// Skip is the number of matching items before this page.
func (o Options) Skip() int {
	return (o.Page - 1) * o.Limit
}
