package templates

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// Advisory ATS configuration bounds
const (
	keywordDensityMin  = 1.0
	keywordDensityMax  = 5.0
	atsFontSizeMinLow  = 8.0
	atsFontSizeMinHigh = 12.0
	fontVariantsMin    = 1
	fontVariantsMax    = 4
	atsMarginMinIn     = 0.5
	atsMarginMaxIn     = 1.5
)

// checkFeatures flags missing optimization features. A template can exist
// without them, just suboptimally.
func checkFeatures(t *types.ResumeTemplate, result *types.ValidationResult) {
	if !t.Features.ATSOptimized {
		result.AddWarning("NOT_ATS_OPTIMIZED", "features.ats_optimized", "template is not marked ATS-optimized")
	}
	if !t.Features.MobileOptimized {
		result.AddWarning("NOT_MOBILE_OPTIMIZED", "features.mobile_optimized", "template is not marked mobile-optimized")
	}
	if !t.Features.PrintOptimized {
		result.AddWarning("NOT_PRINT_OPTIMIZED", "features.print_optimized", "template is not marked print-optimized")
	}
}

// checkATSConfig validates the advisory ATS tuning parameters. These are
// configuration hints rather than structural requirements, so every finding
// is a warning.
func checkATSConfig(t *types.ResumeTemplate, result *types.ValidationResult) {
	cfg := t.ATSOptimization

	if cfg.KeywordDensityTarget != 0 && (cfg.KeywordDensityTarget < keywordDensityMin || cfg.KeywordDensityTarget > keywordDensityMax) {
		result.AddWarning("KEYWORD_DENSITY_UNUSUAL", "ats_optimization.keyword_density_target", fmt.Sprintf("keyword density target %.1f%% outside %.0f-%.0f%%", cfg.KeywordDensityTarget, keywordDensityMin, keywordDensityMax))
	}
	if cfg.FontSizeMin != 0 && (cfg.FontSizeMin < atsFontSizeMinLow || cfg.FontSizeMin > atsFontSizeMinHigh) {
		result.AddWarning("MIN_FONT_SIZE_UNUSUAL", "ats_optimization.font_size_min", fmt.Sprintf("minimum font size %.1fpx outside %.0f-%.0fpx", cfg.FontSizeMin, atsFontSizeMinLow, atsFontSizeMinHigh))
	}
	if cfg.MaxFontVariants != 0 && (cfg.MaxFontVariants < fontVariantsMin || cfg.MaxFontVariants > fontVariantsMax) {
		result.AddWarning("FONT_VARIANTS_UNUSUAL", "ats_optimization.max_font_variants", fmt.Sprintf("max font variants %d outside %d-%d", cfg.MaxFontVariants, fontVariantsMin, fontVariantsMax))
	}
	if cfg.MarginMinIn != 0 && cfg.MarginMinIn < atsMarginMinIn {
		result.AddWarning("ATS_MARGIN_MIN_LOW", "ats_optimization.margin_min_in", fmt.Sprintf("minimum margin %.2fin below recommended %.1fin", cfg.MarginMinIn, atsMarginMinIn))
	}
	if cfg.MarginMaxIn != 0 && cfg.MarginMaxIn > atsMarginMaxIn {
		result.AddWarning("ATS_MARGIN_MAX_HIGH", "ats_optimization.margin_max_in", fmt.Sprintf("maximum margin %.2fin above recommended %.1fin", cfg.MarginMaxIn, atsMarginMaxIn))
	}
}

// checkMetadata validates catalog bookkeeping. Rating and download bounds are
// data-integrity constraints and therefore hard errors; missing authorship is
// merely flagged.
func checkMetadata(t *types.ResumeTemplate, result *types.ValidationResult) {
	meta := t.Metadata

	if meta.Version == "" {
		result.AddWarning("MISSING_VERSION", "metadata.version", "template version is recommended")
	}
	if meta.Author == "" {
		result.AddWarning("MISSING_AUTHOR", "metadata.author", "template author is recommended")
	}
	if meta.Rating < 0 || meta.Rating > 5 {
		result.AddError("RATING_OUT_OF_RANGE", "metadata.rating", fmt.Sprintf("rating %.1f outside 0-5", meta.Rating))
	}
	if meta.Downloads < 0 {
		result.AddError("NEGATIVE_DOWNLOADS", "metadata.downloads", fmt.Sprintf("download count %d must be non-negative", meta.Downloads))
	}

	if !t.Features.Accessibility.WCAGCompliant {
		result.AddWarning("NOT_WCAG_COMPLIANT", "features.accessibility.wcag_compliant", "template is not marked WCAG compliant")
	}
	if !t.Features.Accessibility.FontScaling {
		result.AddWarning("NO_FONT_SCALING", "features.accessibility.font_scaling", "template does not support font scaling")
	}
}
