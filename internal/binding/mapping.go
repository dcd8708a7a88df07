// Package binding maps resume documents onto template field graphs with type
// coercion, formatting transforms, and per-field validation.
package binding

import (
	"log"

	"github.com/jonathan/resume-engine/internal/types"
)

// canonicalPaths is the closed field-id → resume dot-path table. Unknown ids
// deliberately fall back to themselves as a single-segment path so custom
// fields still bind; the fallback is logged rather than silent.
var canonicalPaths = map[string]string{
	// personal-info
	"full_name": "personal_info.full_name",
	"title":     "personal_info.title",
	"email":     "personal_info.email",
	"phone":     "personal_info.phone",
	"location":  "personal_info.location",
	"linkedin":  "personal_info.linkedin",
	"website":   "personal_info.website",
	"github":    "personal_info.github",

	// summary
	"summary": "summary",

	// experience
	"position":     "experience.position",
	"company":      "experience.company",
	"start_date":   "experience.start_date",
	"end_date":     "experience.end_date",
	"current":      "experience.current",
	"description":  "experience.description",
	"achievements": "experience.achievements",

	// education
	"institution": "education.institution",
	"degree":      "education.degree",
	"field":       "education.field",
	"gpa":         "education.gpa",

	// skills
	"name":     "skills.name",
	"category": "skills.category",
	"level":    "skills.level",

	// projects
	"project_name":        "projects.name",
	"project_description": "projects.description",
	"technologies":        "projects.technologies",
	"project_url":         "projects.url",

	// certifications
	"cert_name": "certifications.name",
	"issuer":    "certifications.issuer",
	"cert_date": "certifications.date",

	// languages
	"language":    "languages.name",
	"proficiency": "languages.proficiency",
}

// ResolvePath returns the resume dot-path for a template field id. Unknown
// ids resolve to themselves.
func ResolvePath(fieldID string) string {
	if path, ok := canonicalPaths[fieldID]; ok {
		return path
	}
	log.Printf("binding: no canonical path for field id %q, using self-path", fieldID)
	return fieldID
}

// DeriveMappings computes the field mappings for a template. The result is
// deterministic for a given template and may be cached alongside it.
func DeriveMappings(template *types.ResumeTemplate) []types.FieldMapping {
	var mappings []types.FieldMapping
	for _, section := range template.Sections {
		for _, field := range section.Fields {
			mappings = append(mappings, types.FieldMapping{
				SectionID:  section.ID,
				FieldID:    field.ID,
				Path:       ResolvePath(field.ID),
				Required:   field.Required,
				Transforms: field.Transforms,
			})
		}
	}
	return mappings
}
