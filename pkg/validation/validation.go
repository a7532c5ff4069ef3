// Package validation evaluates declarative, per-route rule sets against raw
// request fields.
//
// Each Rule binds one field of one request source to a validator tag
// expression (github.com/go-playground/validator/v10). Check evaluates every
// rule of a set, never stopping at the first failure, and reports one
// FieldError per failing rule in declaration order.
package validation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Source is where a rule reads its field from.
type Source string

const (
	Body   Source = "body"
	Query  Source = "query"
	Params Source = "params"
)

// DefaultMessage is used by rules declared without a message.
const DefaultMessage = "Invalid value"

// Rule is one field-level predicate.
type Rule struct {
	Field    string
	Source   Source
	Tag      string // validator tag expression, e.g. "required,email"
	Message  string
	Trim     bool // trim surrounding whitespace before checking
	Optional bool // skip when the field is absent from its source
}

// RuleSet is a named, ordered sequence of rules applied to one route.
type RuleSet struct {
	Name  string
	Rules []Rule
}

// NewRuleSet groups rules under a name.
func NewRuleSet(name string, rules ...Rule) RuleSet {
	return RuleSet{Name: name, Rules: rules}
}

// FieldError is the client-facing description of a failing rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is every failing rule of one check.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Input carries the untyped request fields per source.
type Input struct {
	Body   map[string]any
	Query  map[string]string
	Params map[string]string
}

// lookup returns the normalized string value of a field and whether it was present.
func (in Input) lookup(src Source, field string) (string, bool) {
	switch src {
	case Body:
		v, ok := in.Body[field]
		if !ok {
			return "", false
		}
		return normalize(v), true
	case Query:
		v, ok := in.Query[field]
		return v, ok
	case Params:
		v, ok := in.Params[field]
		return v, ok
	}
	return "", false
}

// normalize renders a decoded JSON value as the string the predicates see.
func normalize(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Validator runs rule sets. It is safe for concurrent use once built.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New()
	registerCustomTags(v)
	return &Validator{v: v}
}

// Check evaluates every rule of set and returns the failures, or nil.
func (val *Validator) Check(set RuleSet, in Input) Errors {
	var errs Errors
	for _, r := range set.Rules {
		value, present := in.lookup(r.Source, r.Field)
		if r.Optional && !present {
			continue
		}
		if r.Trim {
			value = strings.TrimSpace(value)
		}
		if err := val.v.Var(value, r.Tag); err != nil {
			msg := r.Message
			if msg == "" {
				msg = DefaultMessage
			}
			errs = append(errs, FieldError{Field: r.Field, Message: msg})
		}
	}
	return errs
}

// Verify reports rules whose tag expression the validator cannot parse.
// validator panics on unknown tags, so this is meant to run once at startup.
func (val *Validator) Verify(sets ...RuleSet) (err error) {
	for _, set := range sets {
		for _, r := range set.Rules {
			if r.Field == "" {
				return fmt.Errorf("validation: rule set %q has a rule without field", set.Name)
			}
			switch r.Source {
			case Body, Query, Params:
			default:
				return fmt.Errorf("validation: rule set %q field %q: unknown source %q", set.Name, r.Field, r.Source)
			}
			if perr := val.tryTag(r.Tag); perr != nil {
				return fmt.Errorf("validation: rule set %q field %q: %w", set.Name, r.Field, perr)
			}
		}
	}
	return nil
}

func (val *Validator) tryTag(tag string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("bad tag %q: %v", tag, rec)
		}
	}()
	_ = val.v.Var("", tag)
	return nil
}
