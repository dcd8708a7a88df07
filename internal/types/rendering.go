package types

import "time"

// RenderFormat selects the rendering path
type RenderFormat string

// Supported render formats
const (
	FormatHTML    RenderFormat = "html"
	FormatPreview RenderFormat = "preview"
)

// Header style values accepted by templates
const (
	HeaderCentered     = "centered"
	HeaderLeftAligned  = "left-aligned"
	HeaderRightAligned = "right-aligned"
)

// RenderOptions controls a single render call. EmbedImages and SubsetFonts
// are accepted on the wire but the HTML path does not apply them yet; output
// is identical with or without them.
type RenderOptions struct {
	Format        RenderFormat           `json:"format,omitempty"`
	Minify        bool                   `json:"minify,omitempty"`
	InlineCSS     bool                   `json:"inline_css,omitempty"`
	EmbedImages   bool                   `json:"embed_images,omitempty"`
	SubsetFonts   bool                   `json:"subset_fonts,omitempty"`
	Customization *TemplateCustomization `json:"customization,omitempty"`
}

// Asset references a font, image, or icon the rendered document depends on
type Asset struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// RenderMetadata records provenance of a rendered document
type RenderMetadata struct {
	RenderID      string        `json:"render_id"`
	TemplateID    string        `json:"template_id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	RenderingTime time.Duration `json:"rendering_time"`
	Checksum      string        `json:"checksum"`
	HTMLBytes     int           `json:"html_bytes"`
	CSSBytes      int           `json:"css_bytes"`
	TotalBytes    int           `json:"total_bytes"`
}

// RenderedTemplate is the ephemeral output of a render call; persistence is
// the caller's concern.
type RenderedTemplate struct {
	HTML       string         `json:"html"`
	CSS        string         `json:"css"`
	JavaScript string         `json:"javascript,omitempty"`
	Assets     []Asset        `json:"assets,omitempty"`
	Metadata   RenderMetadata `json:"metadata"`

	// Diagnostics holds the bound-data contract check: required sections or
	// fields left empty after binding. Rendering is best-effort, so these are
	// reported rather than raised.
	Diagnostics *ValidationResult `json:"diagnostics,omitempty"`
}
