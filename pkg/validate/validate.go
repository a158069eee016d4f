// Package validate provides struct-tag validation for user input before it
// goes on the wire: the register form and the manager's food-item form.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	email               valid email address
//	alpha_dash          letters, digits, hyphens, underscores
//	numeric             any number
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gt=N                number > N
//	in=a|b|c            value must be one of the listed items
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRE     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	alphaDashRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		for _, rule := range strings.Split(tag, ",") {
			if msg := applyRule(strings.TrimSpace(rule), name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}
	case "email":
		if !emailRE.MatchString(raw) {
			return fmt.Sprintf("The %s must be a valid email address.", field)
		}
	case "alpha_dash":
		if !alphaDashRE.MatchString(raw) {
			return fmt.Sprintf("The %s may only contain letters, numbers, dashes and underscores.", field)
		}
	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s must be a number.", field)
		}
	case "min":
		if failsBound(v, raw, param, func(n, p float64) bool { return n < p }) {
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		if failsBound(v, raw, param, func(n, p float64) bool { return n > p }) {
			return fmt.Sprintf("The %s may not be greater than %s.", field, param)
		}
	case "gt":
		n, err := strconv.ParseFloat(raw, 64)
		p, _ := strconv.ParseFloat(param, 64)
		if err != nil || n <= p {
			return fmt.Sprintf("The %s must be greater than %s.", field, param)
		}
	case "in":
		for _, allowed := range strings.Split(param, "|") {
			if strings.EqualFold(raw, allowed) {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}
	return ""
}

// failsBound applies min/max: numeric fields compare by value, strings by
// character length.
func failsBound(v reflect.Value, raw, param string, fail func(n, p float64) bool) bool {
	p, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return false
	}
	switch v.Kind() {
	case reflect.String:
		return fail(float64(len([]rune(v.String()))), p)
	default:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return true
		}
		return fail(n, p)
	}
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}
