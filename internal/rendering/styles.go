package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// resolvedStyle is the template styling with the customization overlay
// applied. The template itself is never mutated.
type resolvedStyle struct {
	HeadingFamily  string
	BodyFamily     string
	BaseSizePx     float64
	HeadingSizePx  float64
	Primary        string
	Text           string
	Background     string
	Accent         string
	SectionSpacing float64
	ItemSpacing    float64
	LineHeight     float64
	MarginIn       float64
	Columns        int
	HeaderAlign    string
}

// resolveStyle merges template defaults with the customization overlay
func resolveStyle(template *types.ResumeTemplate, customization *types.TemplateCustomization) resolvedStyle {
	style := resolvedStyle{
		HeadingFamily:  template.Styling.Fonts.Heading.Family,
		BodyFamily:     template.Styling.Fonts.Body.Family,
		BaseSizePx:     template.Styling.Fonts.Body.SizePx,
		HeadingSizePx:  template.Styling.Fonts.Heading.SizePx,
		Primary:        template.Styling.Colors.Primary,
		Text:           template.Styling.Colors.Text,
		Background:     template.Styling.Colors.Background,
		Accent:         template.Styling.Colors.Accent,
		SectionSpacing: template.Layout.Spacing.Section,
		ItemSpacing:    template.Layout.Spacing.Item,
		LineHeight:     template.Layout.Spacing.LineHeight,
		MarginIn:       template.Layout.Page.Margins.Top,
		Columns:        template.Layout.Columns,
		HeaderAlign:    headerAlignment(template.Layout.HeaderStyle),
	}
	if style.BaseSizePx == 0 {
		style.BaseSizePx = 11
	}
	if style.HeadingSizePx == 0 {
		style.HeadingSizePx = 2 * style.BaseSizePx
	}
	if style.LineHeight == 0 {
		style.LineHeight = 1.4
	}
	if style.Background == "" {
		style.Background = "#ffffff"
	}
	if style.Columns == 0 {
		style.Columns = 1
	}

	if customization == nil {
		return style
	}
	if c := customization.Colors; c != nil {
		if c.Primary != "" {
			style.Primary = c.Primary
		}
		if c.Text != "" {
			style.Text = c.Text
		}
		if c.Background != "" {
			style.Background = c.Background
		}
		if c.Accent != "" {
			style.Accent = c.Accent
		}
	}
	if ty := customization.Typography; ty != nil {
		if ty.HeadingFamily != "" {
			style.HeadingFamily = ty.HeadingFamily
		}
		if ty.BodyFamily != "" {
			style.BodyFamily = ty.BodyFamily
		}
		if ty.BaseSizePx != 0 {
			style.BaseSizePx = ty.BaseSizePx
		}
	}
	if l := customization.Layout; l != nil {
		if l.SectionSpacing != 0 {
			style.SectionSpacing = l.SectionSpacing
		}
		if l.ItemSpacing != 0 {
			style.ItemSpacing = l.ItemSpacing
		}
		if l.MarginIn != 0 {
			style.MarginIn = l.MarginIn
		}
	}
	return style
}

func headerAlignment(headerStyle string) string {
	switch headerStyle {
	case types.HeaderLeftAligned:
		return "left"
	case types.HeaderRightAligned:
		return "right"
	default:
		return "center"
	}
}

// generateCSS renders the resolved style as an inline stylesheet
func generateCSS(style resolvedStyle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "body { font-family: %s; font-size: %.1fpx; line-height: %.2f; color: %s; background: %s; margin: %.2fin; }\n",
		style.BodyFamily, style.BaseSizePx, style.LineHeight, style.Text, style.Background, style.MarginIn)
	fmt.Fprintf(&b, "h1, h2, h3 { font-family: %s; color: %s; }\n", style.HeadingFamily, style.Primary)
	fmt.Fprintf(&b, "h1 { font-size: %.1fpx; }\n", style.HeadingSizePx)
	fmt.Fprintf(&b, ".resume-header { text-align: %s; margin-bottom: %.1fpx; }\n", style.HeaderAlign, style.SectionSpacing)
	fmt.Fprintf(&b, ".resume-section { margin-bottom: %.1fpx; }\n", style.SectionSpacing)
	fmt.Fprintf(&b, ".resume-item { margin-bottom: %.1fpx; }\n", style.ItemSpacing)
	if style.Columns > 1 {
		fmt.Fprintf(&b, ".resume-body { column-count: %d; column-gap: %.1fpx; }\n", style.Columns, style.SectionSpacing)
	}
	if style.Accent != "" {
		fmt.Fprintf(&b, ".resume-section h2 { border-bottom: 1px solid %s; }\n", style.Accent)
	}
	return b.String()
}
