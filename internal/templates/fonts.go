package templates

import "strings"

// atsApprovedFonts are typefaces reliably rendered by mainstream ATS parsers
var atsApprovedFonts = []string{
	"Arial",
	"Calibri",
	"Cambria",
	"Garamond",
	"Georgia",
	"Helvetica",
	"Times New Roman",
	"Verdana",
}

// IsATSApprovedFont reports whether family is on the ATS-safe allow-list.
// Matching is case-insensitive and ignores fallback lists ("Arial, sans-serif").
func IsATSApprovedFont(family string) bool {
	primary := family
	if idx := strings.Index(family, ","); idx >= 0 {
		primary = family[:idx]
	}
	primary = strings.TrimSpace(strings.Trim(strings.TrimSpace(primary), `"'`))
	for _, approved := range atsApprovedFonts {
		if strings.EqualFold(primary, approved) {
			return true
		}
	}
	return false
}

// ATSApprovedFonts returns a copy of the allow-list for reporting
func ATSApprovedFonts() []string {
	out := make([]string, len(atsApprovedFonts))
	copy(out, atsApprovedFonts)
	return out
}
