package rendering

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-engine/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateResume checks the resume against the template's required-section
// contract. A required section with no resume data is an error. Experience
// and education additionally draw a warning when absent even if the template
// does not require them. Warnings never block rendering.
func ValidateResume(template *types.ResumeTemplate, resume *types.Resume) *types.ValidationResult {
	result := &types.ValidationResult{}

	if resume == nil {
		result.AddError("RESUME_NIL", "", "resume document is missing")
		result.Finalize()
		return result
	}

	if resume.PersonalInfo.FullName == "" {
		result.AddError("MISSING_FULL_NAME", "personal_info.full_name", "full name is required")
	}
	if resume.PersonalInfo.Email != "" && !emailPattern.MatchString(resume.PersonalInfo.Email) {
		result.AddError("INVALID_EMAIL", "personal_info.email", fmt.Sprintf("email %q is not valid", resume.PersonalInfo.Email))
	}

	for _, section := range template.Sections {
		if resume.HasSectionData(section.Type) {
			continue
		}
		if section.Required {
			result.AddError("MISSING_REQUIRED_SECTION", string(section.Type), fmt.Sprintf("template requires %s data", section.Type))
			continue
		}
		if section.Type == types.SectionExperience || section.Type == types.SectionEducation {
			result.AddWarning("MISSING_SECTION_DATA", string(section.Type), fmt.Sprintf("resume has no %s entries", section.Type))
		}
	}

	result.Finalize()
	return result
}
