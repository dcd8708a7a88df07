package types

import "time"

// Binding error codes
const (
	CodeRequiredFieldMissing  = "REQUIRED_FIELD_MISSING"
	CodeFieldValidationFailed = "FIELD_VALIDATION_FAILED"
	CodeSectionBindingError   = "SECTION_BINDING_ERROR"
	CodeOptionalFieldMissing  = "OPTIONAL_FIELD_MISSING"
	CodeEnrichmentFailed      = "ENRICHMENT_FAILED"
)

// FieldMapping is a declarative link from a template field to a dot-path into
// the resume document. Mappings are deterministic for a given template and
// may be cached alongside it.
type FieldMapping struct {
	SectionID  string   `json:"section_id"`
	FieldID    string   `json:"field_id"`
	Path       string   `json:"path"`
	Required   bool     `json:"required"`
	Transforms []string `json:"transforms,omitempty"`
}

// BoundData mirrors the template's section/field graph with resolved values:
// section id → field id → formatted value.
type BoundData map[string]map[string]any

// DataBindingError records a failed binding for one field or section.
// Binding errors are data, not raised errors; they never abort the bind.
type DataBindingError struct {
	Code      string `json:"code"`
	SectionID string `json:"section_id"`
	FieldID   string `json:"field_id,omitempty"`
	Message   string `json:"message"`
	Suggested string `json:"suggested,omitempty"`
}

// DataBindingWarning records a non-fatal binding observation
type DataBindingWarning struct {
	Code      string `json:"code"`
	SectionID string `json:"section_id"`
	FieldID   string `json:"field_id,omitempty"`
	Message   string `json:"message"`
}

// AppliedTransform records one transform applied during binding
type AppliedTransform struct {
	SectionID string `json:"section_id"`
	FieldID   string `json:"field_id"`
	Transform string `json:"transform"`
}

// TransformationRecord lists every conversion applied during a bind
type TransformationRecord struct {
	Conversions []AppliedTransform `json:"conversions"`
}

// BindingMetadata summarizes a bind pass
type BindingMetadata struct {
	TotalFields      int           `json:"total_fields"`
	BoundFields      int           `json:"bound_fields"`
	MissingRequired  int           `json:"missing_required"`
	Duration         time.Duration `json:"duration"`
	DataCompleteness float64       `json:"data_completeness"`
}

// DataBindingResult is the full output of a bind pass
type DataBindingResult struct {
	Success        bool                 `json:"success"`
	Data           BoundData            `json:"data"`
	Errors         []DataBindingError   `json:"errors"`
	Warnings       []DataBindingWarning `json:"warnings"`
	Transformation TransformationRecord `json:"transformation"`
	Metadata       BindingMetadata      `json:"metadata"`
}
