package form

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	MaxLength int
	Pattern   *regexp.Regexp
	// Hint replaces the pattern in the mismatch message, e.g. "DD-MM-YYYY".
	Hint string
	Min  int // minimum selections (multi-select)
}

// ValidateText checks a text value against the validation rules.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		if v.Hint != "" {
			return "expected " + v.Hint
		}
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	return ""
}

// ValidateSelection checks a selection count against the validation rules.
func (v FieldValidation) ValidateSelection(count int) string {
	if v.Required && count == 0 {
		return "at least one selection required"
	}
	if v.Min > 0 && count < v.Min {
		return fmt.Sprintf("select at least %d", v.Min)
	}
	return ""
}
