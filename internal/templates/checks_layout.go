package templates

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// Layout bounds, in inches and pixels
const (
	pageWidthMinIn  = 6.0
	pageWidthMaxIn  = 12.0
	pageHeightMinIn = 8.0
	pageHeightMaxIn = 14.0
	marginMinIn     = 0.25
	marginMaxIn     = 2.0

	breakpointMobileMin  = 320
	breakpointMobileMax  = 768
	breakpointTabletMin  = 768
	breakpointTabletMax  = 1024
	breakpointDesktopMin = 1024
	breakpointDesktopMax = 1920
)

var knownLayoutFormats = map[string]bool{
	"single-column": true,
	"two-column":    true,
	"hybrid":        true,
}

var knownHeaderStyles = map[string]bool{
	types.HeaderCentered:     true,
	types.HeaderLeftAligned:  true,
	types.HeaderRightAligned: true,
}

// checkLayout validates format enums, section ordering, spacing, page
// geometry, and responsive breakpoints.
func checkLayout(t *types.ResumeTemplate, result *types.ValidationResult) {
	layout := t.Layout

	if !knownLayoutFormats[layout.Format] {
		result.AddError("INVALID_LAYOUT_FORMAT", "layout.format", fmt.Sprintf("unknown layout format %q", layout.Format))
	}
	if !knownHeaderStyles[layout.HeaderStyle] {
		result.AddError("INVALID_HEADER_STYLE", "layout.header_style", fmt.Sprintf("unknown header style %q", layout.HeaderStyle))
	}

	checkSectionOrder(t, result)
	checkSpacing(layout.Spacing, result)
	checkPage(layout.Page, result)
	checkBreakpoints(layout.Breakpoints, result)
}

func checkSectionOrder(t *types.ResumeTemplate, result *types.ValidationResult) {
	if len(t.Layout.SectionOrder) == 0 {
		result.AddError("EMPTY_SECTION_ORDER", "layout.section_order", "layout section order must not be empty")
		return
	}

	seen := make(map[string]bool)
	for _, id := range t.Layout.SectionOrder {
		if seen[id] {
			result.AddError("DUPLICATE_SECTION_ORDER", "layout.section_order", fmt.Sprintf("section id %q appears more than once in section order", id))
		}
		seen[id] = true
	}

	// Order values on the sections themselves should run 1..n. Off-sequence
	// ordering still renders deterministically, so it is only flagged.
	for i, section := range t.Sections {
		if section.Order != i+1 {
			result.AddWarning("NON_SEQUENTIAL_ORDER", "sections", fmt.Sprintf("section %q has order %d, expected %d", section.ID, section.Order, i+1))
			break
		}
	}
}

func checkSpacing(spacing types.SpacingConfig, result *types.ValidationResult) {
	if spacing.Section < 0 {
		result.AddError("NEGATIVE_SECTION_SPACING", "layout.spacing.section", "section spacing must be non-negative")
	}
	if spacing.Item < 0 {
		result.AddError("NEGATIVE_ITEM_SPACING", "layout.spacing.item", "item spacing must be non-negative")
	}
	if spacing.LineHeight < 1.0 {
		result.AddError("LINE_HEIGHT_TOO_SMALL", "layout.spacing.line_height", "line height must be at least 1.0")
	}
}

func checkPage(page types.PageConfig, result *types.ValidationResult) {
	if page.WidthIn < pageWidthMinIn || page.WidthIn > pageWidthMaxIn {
		result.AddError("PAGE_WIDTH_OUT_OF_RANGE", "layout.page.width_in", fmt.Sprintf("page width %.2fin outside %.0f-%.0fin", page.WidthIn, pageWidthMinIn, pageWidthMaxIn))
	}
	if page.HeightIn < pageHeightMinIn || page.HeightIn > pageHeightMaxIn {
		result.AddError("PAGE_HEIGHT_OUT_OF_RANGE", "layout.page.height_in", fmt.Sprintf("page height %.2fin outside %.0f-%.0fin", page.HeightIn, pageHeightMinIn, pageHeightMaxIn))
	}

	margins := map[string]float64{
		"top":    page.Margins.Top,
		"bottom": page.Margins.Bottom,
		"left":   page.Margins.Left,
		"right":  page.Margins.Right,
	}
	for side, value := range margins {
		if value < marginMinIn || value > marginMaxIn {
			result.AddError("MARGIN_OUT_OF_RANGE", "layout.page.margins."+side, fmt.Sprintf("%s margin %.2fin outside %.2f-%.2fin", side, value, marginMinIn, marginMaxIn))
		}
	}
}

func checkBreakpoints(bp types.BreakpointConfig, result *types.ValidationResult) {
	if bp.Mobile < breakpointMobileMin || bp.Mobile > breakpointMobileMax {
		result.AddWarning("MOBILE_BREAKPOINT_UNUSUAL", "layout.breakpoints.mobile", fmt.Sprintf("mobile breakpoint %dpx outside %d-%dpx", bp.Mobile, breakpointMobileMin, breakpointMobileMax))
	}
	if bp.Tablet < breakpointTabletMin || bp.Tablet > breakpointTabletMax {
		result.AddWarning("TABLET_BREAKPOINT_UNUSUAL", "layout.breakpoints.tablet", fmt.Sprintf("tablet breakpoint %dpx outside %d-%dpx", bp.Tablet, breakpointTabletMin, breakpointTabletMax))
	}
	if bp.Desktop < breakpointDesktopMin || bp.Desktop > breakpointDesktopMax {
		result.AddWarning("DESKTOP_BREAKPOINT_UNUSUAL", "layout.breakpoints.desktop", fmt.Sprintf("desktop breakpoint %dpx outside %d-%dpx", bp.Desktop, breakpointDesktopMin, breakpointDesktopMax))
	}
}
