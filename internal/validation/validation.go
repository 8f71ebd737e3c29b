// Package validation provides the field-constraint checks used by the
// transfer records.  Each record type builds its own list of violations
// with these helpers; no struct tags or reflection are involved.
package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Violation describes one failed field constraint.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) Error() string { return v.Field + ": " + v.Message }

// Errors accumulates violations for a single record.
type Errors []Violation

// Add records a violation for field.
func (e *Errors) Add(field, format string, args ...any) {
	*e = append(*e, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Required flags an empty string.
func (e *Errors) Required(field, value string) bool {
	if value == "" {
		e.Add(field, "is required")
		return false
	}
	return true
}

// Length checks the rune count of value against [min, max].  A min of zero
// disables the lower bound.
func (e *Errors) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		e.Add(field, "length must be between %d and %d", min, max)
	}
}

// RequiredLength combines Required and Length.
func (e *Errors) RequiredLength(field, value string, min, max int) {
	if e.Required(field, value) {
		e.Length(field, value, min, max)
	}
}

// IntRange checks an integer against the inclusive range [min, max].
func (e *Errors) IntRange(field string, value, min, max int) {
	if value < min || value > max {
		e.Add(field, "must be between %d and %d", min, max)
	}
}

// FloatRange checks a float against the inclusive range [min, max].
func (e *Errors) FloatRange(field string, value, min, max float64) {
	if value < min || value > max {
		e.Add(field, "must be between %g and %g", min, max)
	}
}

// Present flags a missing optional value.
func (e *Errors) Present(field string, present bool) bool {
	if !present {
		e.Add(field, "is required")
	}
	return present
}

// Match checks value against re.
func (e *Errors) Match(field, value string, re *regexp.Regexp) {
	if !re.MatchString(value) {
		e.Add(field, "has an invalid format")
	}
}
