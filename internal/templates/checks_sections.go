package templates

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// recommendedSectionTypes should appear in most employable templates
var recommendedSectionTypes = []types.SectionType{
	types.SectionPersonalInfo,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionSkills,
}

// requiredFieldsBySection maps a section type to the field ids its
// declaration must include.
var requiredFieldsBySection = map[types.SectionType][]string{
	types.SectionPersonalInfo: {"full_name", "email"},
	types.SectionExperience:   {"position", "company"},
	types.SectionEducation:    {"institution", "degree"},
	types.SectionSkills:       {"name"},
}

// checkSections validates section presence, uniqueness of ids and semantic
// types, and per-section required field declarations.
func checkSections(t *types.ResumeTemplate, result *types.ValidationResult) {
	if len(t.Sections) == 0 {
		result.AddError("NO_SECTIONS", "sections", "template must declare at least one section")
		return
	}

	seenIDs := make(map[string]bool)
	seenTypes := make(map[types.SectionType]bool)
	for _, section := range t.Sections {
		if seenIDs[section.ID] {
			result.AddError("DUPLICATE_SECTION_ID", "sections", fmt.Sprintf("section id %q declared more than once", section.ID))
		}
		seenIDs[section.ID] = true

		if seenTypes[section.Type] {
			result.AddError("DUPLICATE_SECTION_TYPE", "sections", fmt.Sprintf("section type %q declared more than once", section.Type))
		}
		seenTypes[section.Type] = true

		checkSectionFields(section, result)
	}

	for _, recommended := range recommendedSectionTypes {
		if !seenTypes[recommended] {
			result.AddWarning("MISSING_RECOMMENDED_SECTION", "sections", fmt.Sprintf("template has no %q section", recommended))
		}
	}
}

func checkSectionFields(section types.TemplateSection, result *types.ValidationResult) {
	required, ok := requiredFieldsBySection[section.Type]
	if !ok {
		return
	}

	declared := make(map[string]bool, len(section.Fields))
	for _, field := range section.Fields {
		declared[field.ID] = true
	}
	for _, fieldID := range required {
		if !declared[fieldID] {
			result.AddError("MISSING_REQUIRED_FIELD", fmt.Sprintf("sections.%s", section.ID), fmt.Sprintf("section %q must declare field %q", section.ID, fieldID))
		}
	}
}
