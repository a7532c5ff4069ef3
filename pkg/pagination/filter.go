package pagination

// Op is a comparison supported by every Collection.
type Op string

const (
	OpEq       Op = "="
	OpContains Op = "ILIKE"
	OpGte      Op = ">="
	OpLte      Op = "<="
)

// Condition compares one field with a value.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Filter is the AND of its conditions. An empty filter matches everything.
type Filter []Condition

// Eq matches field == value.
func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

// Contains matches a case-insensitive substring.
func Contains(field, substr string) Condition {
	return Condition{Field: field, Op: OpContains, Value: substr}
}

// Gte matches field >= value.
func Gte(field string, value any) Condition {
	return Condition{Field: field, Op: OpGte, Value: value}
}

// Lte matches field <= value.
func Lte(field string, value any) Condition {
	return Condition{Field: field, Op: OpLte, Value: value}
}

// Where builds a Filter from conditions.
func Where(conds ...Condition) Filter {
	return Filter(conds)
}

// EqIf appends an equality condition only when value is not empty.
// Handy for optional query-string filters.
func (f Filter) EqIf(field, value string) Filter {
	if value == "" {
		return f
	}
	return append(f, Eq(field, value))
}
