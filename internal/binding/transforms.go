package binding

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jonathan/resume-engine/internal/types"
)

// Transform names accepted in template field declarations
const (
	TransformTitleCase   = "title-case"
	TransformDateFormat  = "date-format"
	TransformPhoneFormat = "phone-format"
	TransformUppercase   = "uppercase"
	TransformLowercase   = "lowercase"
)

// defaultDateLayout is used when a field declares date-format without rules
const defaultDateLayout = "Jan 2006"

// acceptedDateLayouts are tried in order when parsing resume date strings
var acceptedDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"01/2006",
	"Jan 2006",
	"January 2006",
	"2006",
}

// applyTransform applies one named transform to a value. Unknown transform
// names and non-string values pass through unchanged; the boolean reports
// whether the transform actually changed anything, so only applied transforms
// get recorded.
func applyTransform(name string, value any, rules *types.FieldRules) (any, bool) {
	switch v := value.(type) {
	case string:
		out := transformString(name, v, rules)
		return out, out != v
	case []any:
		changed := false
		out := make([]any, len(v))
		for i, element := range v {
			if s, ok := element.(string); ok {
				t := transformString(name, s, rules)
				out[i] = t
				if t != s {
					changed = true
				}
			} else {
				out[i] = element
			}
		}
		return out, changed
	default:
		return value, false
	}
}

func transformString(name, value string, rules *types.FieldRules) string {
	switch name {
	case TransformTitleCase:
		return titleCase(value)
	case TransformDateFormat:
		layout := defaultDateLayout
		if rules != nil && rules.DateFormat != "" {
			layout = rules.DateFormat
		}
		return formatDate(value, layout)
	case TransformPhoneFormat:
		return formatPhone(value)
	case TransformUppercase:
		return strings.ToUpper(value)
	case TransformLowercase:
		return strings.ToLower(value)
	default:
		return value
	}
}

// titleCase capitalizes the first letter of each word
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
			startOfWord = false
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// formatDate reparses a date string and reformats it with layout. Unparseable
// input passes through unchanged.
func formatDate(value, layout string) string {
	parsed, ok := parseDate(value)
	if !ok {
		return value
	}
	return parsed.Format(layout)
}

// parseDate tries the accepted layouts in order
func parseDate(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range acceptedDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// formatPhone normalizes a phone number to US-style grouping. Ten digits
// become (XXX) XXX-XXXX; longer numbers keep the excess leading digits as an
// international prefix. Inputs with fewer than ten digits pass through.
func formatPhone(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:])
	case len(d) > 10:
		prefix := d[:len(d)-10]
		rest := d[len(d)-10:]
		return fmt.Sprintf("+%s (%s) %s-%s", prefix, rest[:3], rest[3:6], rest[6:])
	default:
		return value
	}
}
