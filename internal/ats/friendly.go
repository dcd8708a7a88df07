package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-engine/internal/templates"
	"github.com/jonathan/resume-engine/internal/types"
)

// safeFallbackFont replaces any non-approved typeface in the friendly
// version. Arial parses everywhere.
const safeFallbackFont = "Arial"

// Per-change impact estimates for the friendly version
const (
	fontChangeImpact       = 15.0
	columnsChangeImpact    = 20.0
	backgroundChangeImpact = 10.0
)

// GenerateATSFriendlyVersion derives a parsing-safe variant of the template
// and customization. The inputs are never mutated; changed settings are
// listed alongside an estimated score improvement.
func (o *Optimizer) GenerateATSFriendlyVersion(template *types.ResumeTemplate, customization *types.TemplateCustomization) *types.ATSFriendlyVersion {
	optimized := cloneTemplate(template)
	optimizedCustomization := cloneCustomization(customization)

	var changes []string
	improvement := 0.0

	if !templates.IsATSApprovedFont(optimized.Styling.Fonts.Heading.Family) {
		changes = append(changes, fmt.Sprintf("Replaced heading font %q with %s", optimized.Styling.Fonts.Heading.Family, safeFallbackFont))
		optimized.Styling.Fonts.Heading.Family = safeFallbackFont
		improvement += fontChangeImpact
	}
	if !templates.IsATSApprovedFont(optimized.Styling.Fonts.Body.Family) {
		changes = append(changes, fmt.Sprintf("Replaced body font %q with %s", optimized.Styling.Fonts.Body.Family, safeFallbackFont))
		optimized.Styling.Fonts.Body.Family = safeFallbackFont
		improvement += fontChangeImpact
	}
	if optimized.Layout.Columns > 2 {
		changes = append(changes, fmt.Sprintf("Reduced layout from %d columns to 1", optimized.Layout.Columns))
		optimized.Layout.Columns = 1
		optimized.Layout.Format = "single-column"
		improvement += columnsChangeImpact
	}
	if !strings.EqualFold(optimized.Styling.Colors.Background, "#ffffff") {
		changes = append(changes, "Set background to pure white")
		optimized.Styling.Colors.Background = "#ffffff"
		improvement += backgroundChangeImpact
	}

	if optimizedCustomization != nil && optimizedCustomization.Typography != nil {
		if family := optimizedCustomization.Typography.BodyFamily; family != "" && !templates.IsATSApprovedFont(family) {
			changes = append(changes, fmt.Sprintf("Removed body font override %q", family))
			optimizedCustomization.Typography.BodyFamily = ""
		}
		if family := optimizedCustomization.Typography.HeadingFamily; family != "" && !templates.IsATSApprovedFont(family) {
			changes = append(changes, fmt.Sprintf("Removed heading font override %q", family))
			optimizedCustomization.Typography.HeadingFamily = ""
		}
	}

	return &types.ATSFriendlyVersion{
		Template:         optimized,
		Customization:    optimizedCustomization,
		Changes:          changes,
		ScoreImprovement: improvement,
	}
}

// cloneTemplate deep-copies the parts of a template this derivation touches.
// Slices are copied so the friendly version shares no backing arrays with
// the input.
func cloneTemplate(template *types.ResumeTemplate) *types.ResumeTemplate {
	clone := *template
	clone.Sections = make([]types.TemplateSection, len(template.Sections))
	copy(clone.Sections, template.Sections)
	clone.Layout.SectionOrder = make([]string, len(template.Layout.SectionOrder))
	copy(clone.Layout.SectionOrder, template.Layout.SectionOrder)
	return &clone
}

func cloneCustomization(customization *types.TemplateCustomization) *types.TemplateCustomization {
	if customization == nil {
		return nil
	}
	clone := *customization
	if customization.Colors != nil {
		colors := *customization.Colors
		clone.Colors = &colors
	}
	if customization.Typography != nil {
		typography := *customization.Typography
		clone.Typography = &typography
	}
	if customization.Layout != nil {
		layout := *customization.Layout
		clone.Layout = &layout
	}
	if customization.SectionVisibility != nil {
		visibility := make(map[string]bool, len(customization.SectionVisibility))
		for k, v := range customization.SectionVisibility {
			visibility[k] = v
		}
		clone.SectionVisibility = visibility
	}
	return &clone
}
