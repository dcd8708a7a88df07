package templates

import (
	"fmt"
	"regexp"

	"github.com/jonathan/resume-engine/internal/types"
)

var templateIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Name and description bounds
const (
	nameMinLength        = 3
	nameMaxLength        = 100
	descriptionMinLength = 10
	descriptionMaxLength = 500
)

// checkStructure validates identity fields: id format, name and description
// lengths, and category membership.
func checkStructure(t *types.ResumeTemplate, result *types.ValidationResult) {
	if t.ID == "" {
		result.AddError("MISSING_ID", "id", "template id is required")
	} else if !templateIDPattern.MatchString(t.ID) {
		result.AddError("INVALID_ID", "id", fmt.Sprintf("template id %q must match [a-z0-9-]+", t.ID))
	}

	if t.Name == "" {
		result.AddError("MISSING_NAME", "name", "template name is required")
	} else if len(t.Name) < nameMinLength {
		result.AddError("NAME_TOO_SHORT", "name", fmt.Sprintf("template name must be at least %d characters", nameMinLength))
	} else if len(t.Name) > nameMaxLength {
		// Overlong names are tolerated but flagged.
		result.AddWarning("NAME_TOO_LONG", "name", fmt.Sprintf("template name exceeds %d characters", nameMaxLength))
	}

	if t.Description == "" {
		result.AddWarning("MISSING_DESCRIPTION", "description", "template has no description")
	} else if len(t.Description) < descriptionMinLength {
		result.AddWarning("DESCRIPTION_TOO_SHORT", "description", fmt.Sprintf("description shorter than %d characters", descriptionMinLength))
	} else if len(t.Description) > descriptionMaxLength {
		result.AddWarning("DESCRIPTION_TOO_LONG", "description", fmt.Sprintf("description exceeds %d characters", descriptionMaxLength))
	}

	if t.Category == "" {
		result.AddError("MISSING_CATEGORY", "category", "template category is required")
	} else if !knownCategory(t.Category) {
		result.AddError("UNKNOWN_CATEGORY", "category", fmt.Sprintf("unknown template category %q", t.Category))
	}
}

func knownCategory(c types.TemplateCategory) bool {
	for _, known := range types.KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}
