package ats

import (
	"fmt"

	"github.com/jonathan/resume-engine/internal/templates"
	"github.com/jonathan/resume-engine/internal/types"
)

// Fixed impact estimates for the deterministic optimization rules
const (
	fontImpact     = 15.0
	keywordsImpact = 20.0
	sectionsImpact = 10.0
)

// missingKeywordsLimit caps how many missing terms one action lists
const missingKeywordsLimit = 10

// buildOptimizations applies the deterministic rule list in priority order
func buildOptimizations(req *types.OptimizeRequest) []types.Optimization {
	optimizations := make([]types.Optimization, 0, 3)

	if !templates.IsATSApprovedFont(req.Template.Styling.Fonts.Heading.Family) ||
		!templates.IsATSApprovedFont(req.Template.Styling.Fonts.Body.Family) {
		optimizations = append(optimizations, types.Optimization{
			Type:        "font",
			Priority:    types.PriorityHigh,
			Description: "Change to an ATS-approved font such as Arial, Calibri, or Georgia",
			Impact:      fontImpact,
		})
	}

	if req.JobDescription != "" {
		keywords := extractJobKeywords(req.JobDescription)
		_, missing := matchedKeywords(keywords, resumeText(req.Resume))
		if len(missing) > 0 {
			if len(missing) > missingKeywordsLimit {
				missing = missing[:missingKeywordsLimit]
			}
			optimizations = append(optimizations, types.Optimization{
				Type:        "keywords",
				Priority:    types.PriorityHigh,
				Description: "Incorporate missing terms from the job description",
				Impact:      keywordsImpact,
				Details:     missing,
			})
		}
	}

	if missing := missingStandardSections(req.Resume); len(missing) > 0 {
		optimizations = append(optimizations, types.Optimization{
			Type:        "sections",
			Priority:    types.PriorityMedium,
			Description: "Add the standard sections ATS parsers expect",
			Impact:      sectionsImpact,
			Details:     missing,
		})
	}

	return optimizations
}

// thinDescriptionLength is the character floor below which an experience
// description is considered too thin to parse meaningfully.
const thinDescriptionLength = 50

// buildWarnings emits severity-tagged cautions for parsing hazards
func buildWarnings(req *types.OptimizeRequest) []types.ATSWarning {
	warnings := make([]types.ATSWarning, 0, 3)

	if hasComplexFormatting(req.Template) {
		warnings = append(warnings, types.ATSWarning{
			Severity: types.SeverityCritical,
			Message:  "Layout uses more than two columns; many ATS parsers read multi-column content out of order",
		})
	}

	info := req.Resume.PersonalInfo
	if info.Email == "" || info.Phone == "" {
		warnings = append(warnings, types.ATSWarning{
			Severity: types.SeverityHigh,
			Message:  "Contact information is incomplete; include both an email address and a phone number",
		})
	}

	thin := 0
	for _, exp := range req.Resume.Experience {
		if len(exp.Description) < thinDescriptionLength {
			thin++
		}
	}
	if thin > 0 {
		warnings = append(warnings, types.ATSWarning{
			Severity: types.SeverityMedium,
			Message:  fmt.Sprintf("%d experience entries have very short descriptions; expand them with concrete responsibilities", thin),
		})
	}

	return warnings
}

// buildRecommendations returns the boilerplate guidance plus job-specific
// additions when a job description is supplied.
func buildRecommendations(req *types.OptimizeRequest) []string {
	recommendations := []string{
		"Use a reverse-chronological format for work history",
		"Quantify achievements with concrete numbers and percentages",
		"Mirror the language of the job description where it is accurate",
	}
	if req.JobDescription != "" {
		recommendations = append(recommendations,
			"Work the job description's key terms into your summary and experience descriptions naturally",
			"Lead your summary with the role title used in the posting",
		)
	}
	return recommendations
}

// missingStandardSections lists absent core sections by display name
func missingStandardSections(resume *types.Resume) []string {
	var missing []string
	if resume.PersonalInfo.FullName == "" {
		missing = append(missing, "Contact")
	}
	if len(resume.Experience) == 0 {
		missing = append(missing, "Experience")
	}
	if len(resume.Education) == 0 {
		missing = append(missing, "Education")
	}
	if len(resume.Skills) == 0 {
		missing = append(missing, "Skills")
	}
	return missing
}
