package templates

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// Font size bounds in px
const (
	headingSizeMinPx = 8.0
	headingSizeMaxPx = 72.0
	bodySizeMinPx    = 8.0
	bodySizeMaxPx    = 24.0
)

// checkStyling validates font presence and sanity, color presence, and the
// text-on-primary contrast ratio.
func checkStyling(t *types.ResumeTemplate, result *types.ValidationResult) {
	styling := t.Styling

	if styling.Fonts.Heading.Family == "" {
		result.AddError("MISSING_HEADING_FONT", "styling.fonts.heading", "heading font family is required")
	} else if !IsATSApprovedFont(styling.Fonts.Heading.Family) {
		result.AddWarning("NON_ATS_HEADING_FONT", "styling.fonts.heading", fmt.Sprintf("heading font %q is not on the ATS-approved list", styling.Fonts.Heading.Family))
	}

	if styling.Fonts.Body.Family == "" {
		result.AddError("MISSING_BODY_FONT", "styling.fonts.body", "body font family is required")
	} else if !IsATSApprovedFont(styling.Fonts.Body.Family) {
		result.AddWarning("NON_ATS_BODY_FONT", "styling.fonts.body", fmt.Sprintf("body font %q is not on the ATS-approved list", styling.Fonts.Body.Family))
	}

	if size := styling.Fonts.Heading.SizePx; size != 0 && (size < headingSizeMinPx || size > headingSizeMaxPx) {
		result.AddWarning("HEADING_SIZE_UNUSUAL", "styling.fonts.heading.size_px", fmt.Sprintf("heading size %.1fpx outside %.0f-%.0fpx", size, headingSizeMinPx, headingSizeMaxPx))
	}
	if size := styling.Fonts.Body.SizePx; size != 0 && (size < bodySizeMinPx || size > bodySizeMaxPx) {
		result.AddWarning("BODY_SIZE_UNUSUAL", "styling.fonts.body.size_px", fmt.Sprintf("body size %.1fpx outside %.0f-%.0fpx", size, bodySizeMinPx, bodySizeMaxPx))
	}

	if styling.Colors.Primary == "" {
		result.AddError("MISSING_PRIMARY_COLOR", "styling.colors.primary", "primary color is required")
	}
	if styling.Colors.Text == "" {
		result.AddError("MISSING_TEXT_COLOR", "styling.colors.text", "text color is required")
	}

	checkTextContrast(styling.Colors, result)
}

// checkTextContrast compares the text color against the primary-500 shade
// (falling back to the primary color) using the WCAG ratio.
func checkTextContrast(colors types.ColorPalette, result *types.ValidationResult) {
	if colors.Text == "" {
		return
	}
	against := colors.Primary500
	if against == "" {
		against = colors.Primary
	}
	if against == "" {
		return
	}

	ratio, err := ContrastRatio(colors.Text, against)
	if err != nil {
		result.AddWarning("UNPARSEABLE_COLOR", "styling.colors", err.Error())
		return
	}
	if ratio < minContrastRatio {
		result.AddWarning("LOW_COLOR_CONTRAST", "styling.colors", fmt.Sprintf("text contrast ratio %.2f is below WCAG AA minimum %.1f", ratio, minContrastRatio))
	}
}
