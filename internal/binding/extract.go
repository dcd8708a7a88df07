package binding

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// resumeDocument converts a resume into its JSON object form and applies the
// customization overlay. The overlay only touches presentation keys (theme,
// fonts, layout, sections); substantive content fields are never altered.
func resumeDocument(resume *types.Resume, customization *types.TemplateCustomization) (map[string]any, error) {
	raw, err := json.Marshal(resume)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}

	if customization != nil {
		if customization.Colors != nil {
			doc["theme"] = customization.Colors
		}
		if customization.Typography != nil {
			doc["fonts"] = customization.Typography
		}
		if customization.Layout != nil {
			doc["layout"] = customization.Layout
		}
		if customization.SectionVisibility != nil {
			doc["sections"] = customization.SectionVisibility
		}
	}
	return doc, nil
}

// extractPath walks value along a dot-path. A missing intermediate key
// yields nil rather than an error. Walking a field through a slice of
// objects fans out, collecting that field from each element.
func extractPath(value any, path string) any {
	current := value
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil
			}
			current = next
		case []any:
			collected := make([]any, 0, len(node))
			rest := strings.Join(segments[i:], ".")
			for _, element := range node {
				if extracted := extractPath(element, rest); extracted != nil {
					collected = append(collected, extracted)
				}
			}
			if len(collected) == 0 {
				return nil
			}
			return collected
		default:
			return nil
		}
	}
	if isEmptyValue(current) {
		return nil
	}
	return current
}

// isEmptyValue treats empty strings and empty slices as absent
func isEmptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
