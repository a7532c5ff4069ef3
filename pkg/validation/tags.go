package validation

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/straydog-api/pkg/objectid"
)

// Custom tags, on top of the validator built-ins:
//
//	objectid   24 hexadecimal characters
//	gtzero     a number strictly greater than zero
//	intmin=N   an integer >= N
//	intmax=N   an integer <= N
//	isodate    an ISO-8601 calendar date or timestamp
func registerCustomTags(v *validator.Validate) {
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectid.IsValid(fl.Field().String())
	})
	_ = v.RegisterValidation("gtzero", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && n > 0
	})
	_ = v.RegisterValidation("intmin", func(fl validator.FieldLevel) bool {
		n, bound, ok := intAndParam(fl)
		return ok && n >= bound
	})
	_ = v.RegisterValidation("intmax", func(fl validator.FieldLevel) bool {
		n, bound, ok := intAndParam(fl)
		return ok && n <= bound
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return IsISODate(fl.Field().String())
	})
}

func intAndParam(fl validator.FieldLevel) (n, bound int64, ok bool) {
	n, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	bound, err = strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return n, bound, true
}

var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
}

// IsISODate reports whether s parses as one of the accepted ISO-8601 forms.
func IsISODate(s string) bool {
	_, ok := ParseISODate(s)
	return ok
}

// ParseISODate parses the first ISO-8601 layout that matches s.
func ParseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
