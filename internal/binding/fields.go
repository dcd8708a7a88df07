package binding

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// FieldType is the closed set of value kinds a template field can declare.
// Validation and output formatting dispatch over this enum rather than
// open-ended per-field validator objects.
type FieldType int

// Field type variants
const (
	FieldText FieldType = iota
	FieldEmail
	FieldPhone
	FieldURL
	FieldDate
	FieldNumber
	FieldMultiSelect
	FieldBool
)

var fieldTypeNames = map[string]FieldType{
	"text":         FieldText,
	"email":        FieldEmail,
	"phone":        FieldPhone,
	"url":          FieldURL,
	"date":         FieldDate,
	"number":       FieldNumber,
	"multi-select": FieldMultiSelect,
	"boolean":      FieldBool,
}

// ParseFieldType resolves a declared type name. Unknown names fall back to
// text, which accepts any scalar.
func ParseFieldType(name string) FieldType {
	if ft, ok := fieldTypeNames[name]; ok {
		return ft
	}
	return FieldText
}

func (ft FieldType) String() string {
	for name, v := range fieldTypeNames {
		if v == ft {
			return name
		}
	}
	return "text"
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+()\d\s.-]{7,}$`)
)

// fieldViolation describes a failed field validation with a suggested
// corrected value. Violations are recorded as binding errors, never raised.
type fieldViolation struct {
	Message   string
	Suggested string
}

// validateValue checks a (possibly transformed) value against its declared
// field type and rules. A nil return means the value is acceptable. Values
// fanned out from list sections are validated element-wise; the first
// violation wins.
func validateValue(ft FieldType, value any, rules *types.FieldRules) *fieldViolation {
	if elements, ok := value.([]any); ok && ft != FieldMultiSelect {
		for _, element := range elements {
			if violation := validateValue(ft, element, rules); violation != nil {
				return violation
			}
		}
		return nil
	}

	switch ft {
	case FieldText:
		return validateText(value, rules)
	case FieldEmail:
		return validateEmail(value)
	case FieldPhone:
		return validatePhone(value)
	case FieldURL:
		return validateURL(value)
	case FieldDate:
		return validateDate(value)
	case FieldNumber:
		return validateNumber(value, rules)
	case FieldMultiSelect:
		return validateMultiSelect(value)
	case FieldBool:
		return validateBool(value)
	default:
		return nil
	}
}

func validateText(value any, rules *types.FieldRules) *fieldViolation {
	s, ok := value.(string)
	if !ok {
		// Non-string scalars (fan-out slices, numbers) are acceptable text.
		return nil
	}
	if rules == nil {
		return nil
	}
	if rules.MinLength > 0 && len(s) < rules.MinLength {
		return &fieldViolation{
			Message:   fmt.Sprintf("text shorter than %d characters", rules.MinLength),
			Suggested: s,
		}
	}
	if rules.MaxLength > 0 && len(s) > rules.MaxLength {
		return &fieldViolation{
			Message:   fmt.Sprintf("text exceeds %d characters", rules.MaxLength),
			Suggested: s[:rules.MaxLength],
		}
	}
	if rules.Pattern != "" {
		re, err := regexp.Compile(rules.Pattern)
		if err == nil && !re.MatchString(s) {
			return &fieldViolation{Message: fmt.Sprintf("text does not match pattern %q", rules.Pattern)}
		}
	}
	return nil
}

func validateEmail(value any) *fieldViolation {
	s, ok := value.(string)
	if !ok || !emailPattern.MatchString(s) {
		return &fieldViolation{
			Message:   fmt.Sprintf("%v is not a valid email address", value),
			Suggested: "name@example.com",
		}
	}
	return nil
}

func validatePhone(value any) *fieldViolation {
	s, ok := value.(string)
	if !ok || !phonePattern.MatchString(s) {
		return &fieldViolation{
			Message:   fmt.Sprintf("%v is not a valid phone number", value),
			Suggested: "(555) 123-4567",
		}
	}
	return nil
}

func validateURL(value any) *fieldViolation {
	s, ok := value.(string)
	if !ok {
		return &fieldViolation{Message: fmt.Sprintf("%v is not a URL", value)}
	}
	parsed, err := url.Parse(s)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &fieldViolation{
			Message:   fmt.Sprintf("%q is not a valid URL", s),
			Suggested: "https://" + strings.TrimPrefix(s, "/"),
		}
	}
	return nil
}

func validateDate(value any) *fieldViolation {
	s, ok := value.(string)
	if !ok {
		return &fieldViolation{Message: fmt.Sprintf("%v is not a date", value)}
	}
	if _, parsed := parseDate(s); !parsed {
		return &fieldViolation{
			Message:   fmt.Sprintf("%q is not a recognized date", s),
			Suggested: "2024-01",
		}
	}
	return nil
}

func validateNumber(value any, rules *types.FieldRules) *fieldViolation {
	n, ok := toNumber(value)
	if !ok {
		return &fieldViolation{Message: fmt.Sprintf("%v is not numeric", value), Suggested: "0"}
	}
	if rules != nil {
		if rules.MinValue != 0 && n < rules.MinValue {
			return &fieldViolation{
				Message:   fmt.Sprintf("%v is below minimum %v", n, rules.MinValue),
				Suggested: strconv.FormatFloat(rules.MinValue, 'f', -1, 64),
			}
		}
		if rules.MaxValue != 0 && n > rules.MaxValue {
			return &fieldViolation{
				Message:   fmt.Sprintf("%v is above maximum %v", n, rules.MaxValue),
				Suggested: strconv.FormatFloat(rules.MaxValue, 'f', -1, 64),
			}
		}
	}
	return nil
}

func validateMultiSelect(value any) *fieldViolation {
	if _, ok := value.([]any); ok {
		return nil
	}
	return &fieldViolation{Message: fmt.Sprintf("%v is not a list", value)}
}

func validateBool(value any) *fieldViolation {
	if _, ok := value.(bool); ok {
		return nil
	}
	return &fieldViolation{Message: fmt.Sprintf("%v is not a boolean", value), Suggested: "false"}
}

// formatValue coerces a validated value into its output representation:
// dates become ISO date strings, booleans and numbers keep their type,
// multi-select values stay lists, and everything else becomes a string.
// Fanned-out list values are formatted element-wise.
func formatValue(ft FieldType, value any) any {
	if elements, ok := value.([]any); ok && ft != FieldMultiSelect {
		out := make([]any, len(elements))
		for i, element := range elements {
			out[i] = formatValue(ft, element)
		}
		return out
	}

	switch ft {
	case FieldDate:
		if s, ok := value.(string); ok {
			if parsed, pok := parseDate(s); pok {
				return parsed.Format("2006-01-02")
			}
		}
		return fmt.Sprintf("%v", value)
	case FieldBool:
		if b, ok := value.(bool); ok {
			return b
		}
		return value
	case FieldNumber:
		if n, ok := toNumber(value); ok {
			return n
		}
		return value
	case FieldMultiSelect:
		return value
	default:
		if _, ok := value.(string); ok {
			return value
		}
		return fmt.Sprintf("%v", value)
	}
}

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	default:
		return 0, false
	}
}
