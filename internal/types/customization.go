package types

// TemplateCustomization is a user-supplied overlay applied on top of template
// defaults at bind/render time. It never mutates the template itself.
type TemplateCustomization struct {
	Colors            *ColorOverride      `json:"colors,omitempty"`
	Typography        *TypographyOverride `json:"typography,omitempty"`
	Layout            *LayoutOverride     `json:"layout,omitempty"`
	SectionVisibility map[string]bool     `json:"section_visibility,omitempty"`
}

// ColorOverride overrides individual palette roles; empty strings keep the
// template default.
type ColorOverride struct {
	Primary    string `json:"primary,omitempty"`
	Text       string `json:"text,omitempty"`
	Background string `json:"background,omitempty"`
	Accent     string `json:"accent,omitempty"`
}

// TypographyOverride overrides font families and the base size
type TypographyOverride struct {
	HeadingFamily string  `json:"heading_family,omitempty"`
	BodyFamily    string  `json:"body_family,omitempty"`
	BaseSizePx    float64 `json:"base_size_px,omitempty"`
}

// LayoutOverride overrides spacing and margins
type LayoutOverride struct {
	SectionSpacing float64 `json:"section_spacing,omitempty"`
	ItemSpacing    float64 `json:"item_spacing,omitempty"`
	MarginIn       float64 `json:"margin_in,omitempty"`
}

// SectionVisible reports whether the given section should be shown, honoring
// the customization override when present and falling back to the template's
// own visibility flag.
func (c *TemplateCustomization) SectionVisible(section *TemplateSection) bool {
	if c != nil && c.SectionVisibility != nil {
		if visible, ok := c.SectionVisibility[section.ID]; ok {
			return visible
		}
	}
	return section.Visible
}
