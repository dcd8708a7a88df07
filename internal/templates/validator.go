// Package templates provides structural, ATS-friendliness, and accessibility
// validation of template definitions.
package templates

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/types"
)

// Validate runs every check group against the template definition and returns
// a scored report. Checks are independent: an error in one group never
// short-circuits the rest. An unexpected panic during validation is caught
// and reported as a single error with score 0.
func Validate(template *types.ResumeTemplate) (result *types.ValidationResult) {
	result = &types.ValidationResult{}

	defer func() {
		if r := recover(); r != nil {
			result = &types.ValidationResult{
				IsValid: false,
				Errors: []types.ValidationIssue{{
					Code:    "VALIDATION_PANIC",
					Message: fmt.Sprintf("unexpected failure during template validation: %v", r),
				}},
				Score: 0,
			}
		}
	}()

	if template == nil {
		result.AddError("TEMPLATE_NIL", "", "template definition is missing")
		result.Finalize()
		return result
	}

	checkStructure(template, result)
	checkLayout(template, result)
	checkStyling(template, result)
	checkSections(template, result)
	checkFeatures(template, result)
	checkATSConfig(template, result)
	checkMetadata(template, result)

	result.Finalize()
	return result
}
