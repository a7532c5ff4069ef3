package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/jhoicas/straydog-api/pkg/pagination"
)

// ErrUnknownField is returned for filter, sort, select or populate names a
// table does not expose.
var ErrUnknownField = errors.New("postgres: unknown field")

// Loader expands one relation on a page of already fetched items.
type Loader[T any] func(ctx context.Context, q Querier, items []*T) error

// Table adapts one SQL table to pagination.Collection. API field names are
// mapped to columns through an explicit whitelist, so user input never
// reaches the SQL text.
type Table[T any] struct {
	q       Querier
	name    string
	fields  map[string]string
	loaders map[string]Loader[T]
}

var _ pagination.Collection[*struct{}] = (*Table[struct{}])(nil)

// NewTable builds a Table. fields maps API names to column names and must
// contain "id".
func NewTable[T any](q Querier, name string, fields map[string]string) *Table[T] {
	return &Table[T]{q: q, name: name, fields: fields, loaders: map[string]Loader[T]{}}
}

// WithLoader registers the expansion for a relation name.
func (t *Table[T]) WithLoader(relation string, l Loader[T]) *Table[T] {
	t.loaders[relation] = l
	return t
}

// Find returns one page of rows matching filter.
func (t *Table[T]) Find(ctx context.Context, filter pagination.Filter, q pagination.Query) ([]*T, error) {
	for _, rel := range q.Populate {
		if _, ok := t.loaders[rel]; !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, t.name, rel)
		}
	}
	sql, args, err := t.selectSQL(filter, q)
	if err != nil {
		return nil, err
	}
	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", t.name, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", t.name, err)
	}
	for _, rel := range q.Populate {
		if err := t.loaders[rel](ctx, t.q, items); err != nil {
			return nil, fmt.Errorf("populate %s.%s: %w", t.name, rel, err)
		}
	}
	return items, nil
}

// Count returns the number of rows matching filter.
func (t *Table[T]) Count(ctx context.Context, filter pagination.Filter) (int64, error) {
	sql, args, err := t.countSQL(filter)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := t.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.name, err)
	}
	return n, nil
}

// Get returns the row with the given id, or nil.
func (t *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	rows, err := t.q.Query(ctx, "SELECT * FROM "+t.name+" WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", t.name, err)
	}
	item, err := noRows(pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T]))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", t.name, err)
	}
	return item, nil
}

// One runs a statement returning a single full row (RETURNING *), or nil.
func (t *Table[T]) One(ctx context.Context, sql string, args ...any) (*T, error) {
	rows, err := t.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return noRows(pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T]))
}

// Delete removes the row with the given id and reports whether it existed.
func (t *Table[T]) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := t.q.Exec(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", t.name, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *Table[T]) column(field string) (string, error) {
	col, ok := t.fields[field]
	if !ok {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, t.name, field)
	}
	return col, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (t *Table[T]) where(filter pagination.Filter, args []any) (string, []any, error) {
	if len(filter) == 0 {
		return "", args, nil
	}
	parts := make([]string, 0, len(filter))
	for _, c := range filter {
		col, err := t.column(c.Field)
		if err != nil {
			return "", nil, err
		}
		value := c.Value
		switch c.Op {
		case pagination.OpEq, pagination.OpGte, pagination.OpLte:
		case pagination.OpContains:
			value = "%" + likeEscaper.Replace(fmt.Sprint(c.Value)) + "%"
		default:
			return "", nil, fmt.Errorf("postgres: unsupported operator %q", c.Op)
		}
		args = append(args, value)
		parts = append(parts, col+" "+string(c.Op)+" $"+strconv.Itoa(len(args)))
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

func (t *Table[T]) selectSQL(filter pagination.Filter, q pagination.Query) (string, []any, error) {
	cols := "*"
	if len(q.Select) > 0 {
		fields := q.Select
		if !lo.Contains(fields, "id") {
			fields = append([]string{"id"}, fields...)
		}
		mapped := make([]string, 0, len(fields))
		for _, f := range lo.Uniq(fields) {
			col, err := t.column(f)
			if err != nil {
				return "", nil, err
			}
			mapped = append(mapped, col)
		}
		cols = strings.Join(mapped, ", ")
	}

	where, args, err := t.where(filter, nil)
	if err != nil {
		return "", nil, err
	}

	order := make([]string, 0, len(q.Sort)+1)
	sortedByID := false
	for _, s := range q.Sort {
		col, err := t.column(s.Field)
		if err != nil {
			return "", nil, err
		}
		dir := "ASC"
		if s.Direction == pagination.Desc {
			dir = "DESC"
		}
		order = append(order, col+" "+dir)
		sortedByID = sortedByID || col == "id"
	}
	if !sortedByID {
		// Ties on the sort keys would otherwise shift rows between pages.
		order = append(order, "id ASC")
	}

	args = append(args, q.Limit, q.Skip)
	sql := "SELECT " + cols + " FROM " + t.name + where +
		" ORDER BY " + strings.Join(order, ", ") +
		" LIMIT $" + strconv.Itoa(len(args)-1) + " OFFSET $" + strconv.Itoa(len(args))
	return sql, args, nil
}

func (t *Table[T]) countSQL(filter pagination.Filter) (string, []any, error) {
	where, args, err := t.where(filter, nil)
	if err != nil {
		return "", nil, err
	}
	return "SELECT count(*) FROM " + t.name + where, args, nil
}
