package binding

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-engine/internal/types"
)

// placeholderValues supply fallback text suggested for missing required fields
var placeholderValues = map[FieldType]string{
	FieldText:  "[to be completed]",
	FieldEmail: "name@example.com",
	FieldPhone: "(555) 123-4567",
	FieldURL:   "https://example.com",
	FieldDate:  "2024-01",
}

// Binder binds resume documents into template field graphs. The zero-enricher
// binder is the common case; enrichment services are pluggable.
type Binder struct {
	enrichers []Enricher
}

// New creates a Binder with the given enrichment services
func New(enrichers ...Enricher) *Binder {
	return &Binder{enrichers: enrichers}
}

// Bind maps resume values into the template's declared fields. It never
// fails for missing or invalid data: every problem is recorded in the result
// and binding continues with the next field. Only an unexpected panic inside
// a section is converted into a SECTION_BINDING_ERROR for that section, and
// the remaining sections still bind.
func (b *Binder) Bind(template *types.ResumeTemplate, resume *types.Resume, customization *types.TemplateCustomization) *types.DataBindingResult {
	started := time.Now()
	result := &types.DataBindingResult{
		Data: make(types.BoundData),
	}

	doc, err := resumeDocument(resume, customization)
	if err != nil {
		result.Errors = append(result.Errors, types.DataBindingError{
			Code:    types.CodeSectionBindingError,
			Message: fmt.Sprintf("failed to prepare resume document: %v", err),
		})
		finishMetadata(result, template, started)
		return result
	}

	for _, section := range template.Sections {
		b.bindSection(section, doc, result)
	}

	b.runEnrichers(resume, result)

	finishMetadata(result, template, started)
	result.Success = len(result.Errors) == 0
	return result
}

// bindSection binds every field of one section, recovering from panics so a
// corrupt section cannot abort the rest of the bind.
func (b *Binder) bindSection(section types.TemplateSection, doc map[string]any, result *types.DataBindingResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, types.DataBindingError{
				Code:      types.CodeSectionBindingError,
				SectionID: section.ID,
				Message:   fmt.Sprintf("section binding failed unexpectedly: %v", r),
			})
		}
	}()

	for _, field := range section.Fields {
		b.bindField(section, field, doc, result)
	}
}

func (b *Binder) bindField(section types.TemplateSection, field types.TemplateField, doc map[string]any, result *types.DataBindingResult) {
	path := ResolvePath(field.ID)
	fieldType := ParseFieldType(field.Type)

	value := extractPath(doc, path)
	if value == nil {
		if field.Required {
			result.Errors = append(result.Errors, types.DataBindingError{
				Code:      types.CodeRequiredFieldMissing,
				SectionID: section.ID,
				FieldID:   field.ID,
				Message:   fmt.Sprintf("required field %q has no value at %q", field.ID, path),
				Suggested: placeholderValues[fieldType],
			})
		} else {
			result.Warnings = append(result.Warnings, types.DataBindingWarning{
				Code:      types.CodeOptionalFieldMissing,
				SectionID: section.ID,
				FieldID:   field.ID,
				Message:   fmt.Sprintf("optional field %q has no value at %q", field.ID, path),
			})
		}
		return
	}

	// Transforms run in the order the field declares them.
	for _, transform := range field.Transforms {
		transformed, applied := applyTransform(transform, value, field.Rules)
		value = transformed
		if applied {
			result.Transformation.Conversions = append(result.Transformation.Conversions, types.AppliedTransform{
				SectionID: section.ID,
				FieldID:   field.ID,
				Transform: transform,
			})
		}
	}

	if violation := validateValue(fieldType, value, field.Rules); violation != nil {
		result.Errors = append(result.Errors, types.DataBindingError{
			Code:      types.CodeFieldValidationFailed,
			SectionID: section.ID,
			FieldID:   field.ID,
			Message:   violation.Message,
			Suggested: violation.Suggested,
		})
		// The invalid value is still recorded so later fields and the
		// renderer can work with a best-effort document.
	}

	if result.Data[section.ID] == nil {
		result.Data[section.ID] = make(map[string]any)
	}
	result.Data[section.ID][field.ID] = formatValue(fieldType, value)
}

// runEnrichers merges derived fields from each enrichment service. Failures
// degrade to warnings.
func (b *Binder) runEnrichers(resume *types.Resume, result *types.DataBindingResult) {
	for _, enricher := range b.enrichers {
		derived, err := enricher.Enrich(resume, result.Data)
		if err != nil {
			result.Warnings = append(result.Warnings, types.DataBindingWarning{
				Code:    types.CodeEnrichmentFailed,
				Message: fmt.Sprintf("enrichment service %q failed: %v", enricher.Name(), err),
			})
			continue
		}
		for sectionID, fields := range derived {
			if result.Data[sectionID] == nil {
				result.Data[sectionID] = make(map[string]any)
			}
			for fieldID, value := range fields {
				result.Data[sectionID][fieldID] = value
			}
		}
	}
}

func finishMetadata(result *types.DataBindingResult, template *types.ResumeTemplate, started time.Time) {
	total := 0
	for _, section := range template.Sections {
		total += len(section.Fields)
	}
	bound := 0
	for _, section := range template.Sections {
		fields, ok := result.Data[section.ID]
		if !ok {
			continue
		}
		for _, field := range section.Fields {
			if _, present := fields[field.ID]; present {
				bound++
			}
		}
	}
	missingRequired := 0
	for _, bindErr := range result.Errors {
		if bindErr.Code == types.CodeRequiredFieldMissing {
			missingRequired++
		}
	}

	result.Metadata = types.BindingMetadata{
		TotalFields:     total,
		BoundFields:     bound,
		MissingRequired: missingRequired,
		Duration:        time.Since(started),
	}
	if total > 0 {
		result.Metadata.DataCompleteness = float64(bound) / float64(total) * 100
	}
}

// ValidateBoundData checks bound data against the template's required
// section and field contract. A required section with no bound keys, or a
// required field left empty, is an error. The renderer runs this after
// binding and reports the findings on the rendered output.
func ValidateBoundData(template *types.ResumeTemplate, data types.BoundData) *types.ValidationResult {
	result := &types.ValidationResult{}

	for _, section := range template.Sections {
		fields, present := data[section.ID]
		if !present || len(fields) == 0 {
			if section.Required {
				result.AddError("MISSING_REQUIRED_SECTION", section.ID, fmt.Sprintf("required section %q has no bound data", section.ID))
			}
			continue
		}
		for _, field := range section.Fields {
			if !field.Required {
				continue
			}
			value, ok := fields[field.ID]
			if !ok || isEmptyValue(value) {
				result.AddError("MISSING_REQUIRED_FIELD", fmt.Sprintf("%s.%s", section.ID, field.ID), fmt.Sprintf("required field %q is empty after binding", field.ID))
			}
		}
	}

	result.Finalize()
	return result
}
