// Package types provides type definitions for structured data used throughout the resume-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TemplateCategory identifies the catalog family a template belongs to
type TemplateCategory string

// Known template categories
const (
	CategoryProfessional TemplateCategory = "professional"
	CategoryModern       TemplateCategory = "modern"
	CategoryCreative     TemplateCategory = "creative"
	CategoryMinimal      TemplateCategory = "minimal"
	CategoryAcademic     TemplateCategory = "academic"
	CategoryTechnical    TemplateCategory = "technical"
)

// KnownCategories lists every valid template category
var KnownCategories = []TemplateCategory{
	CategoryProfessional,
	CategoryModern,
	CategoryCreative,
	CategoryMinimal,
	CategoryAcademic,
	CategoryTechnical,
}

// SectionType identifies the semantic role of a template section
type SectionType string

// Known section types
const (
	SectionPersonalInfo   SectionType = "personal-info"
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionSkills         SectionType = "skills"
	SectionProjects       SectionType = "projects"
	SectionCertifications SectionType = "certifications"
	SectionLanguages      SectionType = "languages"
)

// KnownSectionTypes lists every valid section type
var KnownSectionTypes = []SectionType{
	SectionPersonalInfo,
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionLanguages,
}

// ResumeTemplate is an immutable catalog entry describing the sections,
// layout, styling, and ATS metadata of a resume design. Templates are loaded
// from the registry and never mutated; customization produces a derived
// projection at render time.
type ResumeTemplate struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Category        TemplateCategory  `json:"category"`
	Sections        []TemplateSection `json:"sections"`
	Layout          LayoutConfig      `json:"layout"`
	Styling         StylingConfig     `json:"styling"`
	Features        TemplateFeatures  `json:"features"`
	ATSOptimization ATSConfig         `json:"ats_optimization"`
	Metadata        TemplateMetadata  `json:"metadata"`
}

// TemplateSection declares one semantic block of the template
type TemplateSection struct {
	ID       string          `json:"id"`
	Type     SectionType     `json:"type"`
	Title    string          `json:"title"`
	Required bool            `json:"required"`
	Order    int             `json:"order"`
	Visible  bool            `json:"visible"`
	Fields   []TemplateField `json:"fields"`
}

// TemplateField declares one data slot inside a section
type TemplateField struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Type       string      `json:"type"`
	Required   bool        `json:"required"`
	Transforms []string    `json:"transforms,omitempty"`
	Rules      *FieldRules `json:"rules,omitempty"`
}

// FieldRules carries optional per-field validation constraints
type FieldRules struct {
	MinLength  int     `json:"min_length,omitempty"`
	MaxLength  int     `json:"max_length,omitempty"`
	Pattern    string  `json:"pattern,omitempty"`
	MinValue   float64 `json:"min_value,omitempty"`
	MaxValue   float64 `json:"max_value,omitempty"`
	DateFormat string  `json:"date_format,omitempty"`
}

// LayoutConfig describes page geometry and section arrangement
type LayoutConfig struct {
	Format       string           `json:"format"`
	Columns      int              `json:"columns"`
	HeaderStyle  string           `json:"header_style"`
	SectionOrder []string         `json:"section_order"`
	Spacing      SpacingConfig    `json:"spacing"`
	Page         PageConfig       `json:"page"`
	Breakpoints  BreakpointConfig `json:"breakpoints"`
}

// SpacingConfig holds vertical rhythm values
type SpacingConfig struct {
	Section    float64 `json:"section"`
	Item       float64 `json:"item"`
	LineHeight float64 `json:"line_height"`
}

// PageConfig holds physical page dimensions in inches
type PageConfig struct {
	WidthIn  float64      `json:"width_in"`
	HeightIn float64      `json:"height_in"`
	Margins  MarginConfig `json:"margins"`
}

// MarginConfig holds page margins in inches
type MarginConfig struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// BreakpointConfig holds responsive breakpoints in pixels
type BreakpointConfig struct {
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
	Desktop int `json:"desktop"`
}

// StylingConfig describes fonts and colors
type StylingConfig struct {
	Fonts  FontConfig   `json:"fonts"`
	Colors ColorPalette `json:"colors"`
}

// FontConfig holds the heading and body font roles
type FontConfig struct {
	Heading FontSpec `json:"heading"`
	Body    FontSpec `json:"body"`
}

// FontSpec describes a single font role
type FontSpec struct {
	Family string  `json:"family"`
	Weight int     `json:"weight"`
	SizePx float64 `json:"size_px"`
}

// ColorPalette holds the template color roles as hex strings
type ColorPalette struct {
	Primary    string `json:"primary"`
	Primary500 string `json:"primary_500,omitempty"`
	Text       string `json:"text"`
	Background string `json:"background"`
	Accent     string `json:"accent,omitempty"`
}

// TemplateFeatures holds optimization and accessibility flags
type TemplateFeatures struct {
	ATSOptimized    bool                  `json:"ats_optimized"`
	MobileOptimized bool                  `json:"mobile_optimized"`
	PrintOptimized  bool                  `json:"print_optimized"`
	Accessibility   AccessibilityFeatures `json:"accessibility"`
}

// AccessibilityFeatures holds accessibility-related flags
type AccessibilityFeatures struct {
	WCAGCompliant bool `json:"wcag_compliant"`
	FontScaling   bool `json:"font_scaling"`
	HighContrast  bool `json:"high_contrast"`
}

// ATSConfig holds advisory ATS tuning parameters
type ATSConfig struct {
	KeywordDensityTarget float64  `json:"keyword_density_target"`
	FontSizeMin          float64  `json:"font_size_min"`
	FontSizeMax          float64  `json:"font_size_max"`
	MaxFontVariants      int      `json:"max_font_variants"`
	MarginMinIn          float64  `json:"margin_min_in"`
	MarginMaxIn          float64  `json:"margin_max_in"`
	ProhibitedElements   []string `json:"prohibited_elements,omitempty"`
}

// TemplateMetadata holds catalog bookkeeping
type TemplateMetadata struct {
	Version   string   `json:"version"`
	Author    string   `json:"author"`
	Rating    float64  `json:"rating"`
	Downloads int      `json:"downloads"`
	Tags      []string `json:"tags,omitempty"`
}

// Section returns the section with the given id, or nil if absent
func (t *ResumeTemplate) Section(id string) *TemplateSection {
	for i := range t.Sections {
		if t.Sections[i].ID == id {
			return &t.Sections[i]
		}
	}
	return nil
}

// SectionByType returns the first section with the given semantic type, or nil
func (t *ResumeTemplate) SectionByType(st SectionType) *TemplateSection {
	for i := range t.Sections {
		if t.Sections[i].Type == st {
			return &t.Sections[i]
		}
	}
	return nil
}
