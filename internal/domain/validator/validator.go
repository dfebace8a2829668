// Package validator holds the pure input predicates used by the use cases
// before any store access.
package validator

import (
	"math"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidID reports whether v is an integer number strictly greater than zero.
// Fractional, NaN, infinite, nil and non-numeric values are invalid.
func IsValidID(v any) bool {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int() > 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return value.Uint() > 0
	case reflect.Float32, reflect.Float64:
		f := value.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		return f > 0 && f == math.Trunc(f)
	default:
		return false
	}
}

// IsValidStrings reports whether every value is a non-empty string
func IsValidStrings(values ...any) bool {
	for _, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			return false
		}
	}
	return true
}

// IsValidObject reports whether obj is a non-nil struct whose required fields
// are all set. Fields named in ignoredFields (Go field names) are skipped.
func IsValidObject(obj any, ignoredFields ...string) bool {
	if obj == nil {
		return false
	}
	return validate.StructExcept(obj, ignoredFields...) == nil
}

// IsPropertyOf reports whether name belongs to the closed set of allowed field names
func IsPropertyOf(name string, allowed ...string) bool {
	return name != "" && slices.Contains(allowed, name)
}

// IsEmptyObject reports whether obj is nil, an empty collection or the zero value of its type
func IsEmptyObject(obj any) bool {
	if obj == nil {
		return true
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return true
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return value.Len() == 0
	default:
		return value.IsZero()
	}
}
