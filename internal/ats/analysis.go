package ats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-engine/internal/templates"
	"github.com/jonathan/resume-engine/internal/types"
)

// Summary length band considered effective: long enough to carry keywords,
// short enough that parsers keep it intact.
const (
	summaryMinLength = 50
	summaryMaxLength = 400
)

// computeDetailedAnalysis assembles the per-axis sub-reports
func computeDetailedAnalysis(req *types.OptimizeRequest) types.DetailedAnalysis {
	return types.DetailedAnalysis{
		Sections:   analyzeSections(req.Resume),
		Keywords:   analyzeKeywords(req),
		Formatting: analyzeFormatting(req.Template),
		Structure:  analyzeStructure(req.Resume),
		Content:    analyzeContent(req.Resume),
	}
}

// analyzeSections scores the summary and experience prose individually
func analyzeSections(resume *types.Resume) []types.SectionAnalysis {
	var analyses []types.SectionAnalysis

	if resume.Summary != "" {
		score := 60.0
		feedback := "Summary present"
		if len(resume.Summary) >= summaryMinLength && len(resume.Summary) <= summaryMaxLength {
			score += 20
		} else {
			feedback = fmt.Sprintf("Summary should be between %d and %d characters", summaryMinLength, summaryMaxLength)
		}
		if startsWithActionVerb(resume.Summary) || containsAchievementKeyword(resume.Summary) {
			score += 20
		}
		analyses = append(analyses, types.SectionAnalysis{
			Section:  "summary",
			Score:    clampScore(score),
			Feedback: feedback,
		})
	}

	if len(resume.Experience) > 0 {
		score := 50.0
		totalLength := 0
		for _, exp := range resume.Experience {
			totalLength += len(exp.Description)
		}
		average := totalLength / len(resume.Experience)
		feedback := "Experience descriptions are detailed"
		switch {
		case average >= 100:
			score += 40
		case average >= thinDescriptionLength:
			score += 20
			feedback = "Experience descriptions could carry more detail"
		default:
			feedback = "Experience descriptions are too short for parsers to extract responsibilities"
		}
		analyses = append(analyses, types.SectionAnalysis{
			Section:  "experience",
			Score:    clampScore(score),
			Feedback: feedback,
		})
	}

	return analyses
}

func startsWithActionVerb(text string) bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return false
	}
	first := strings.Trim(fields[0], ".,")
	for _, verb := range append(strongActionVerbs, weakActionVerbs...) {
		if first == verb {
			return true
		}
	}
	return false
}

// analyzeKeywords reports count, density, importance, and placement for each
// tracked keyword. With a job description its extracted terms are tracked;
// otherwise the seniority dictionaries are.
func analyzeKeywords(req *types.OptimizeRequest) []types.KeywordAnalysis {
	var tracked []string
	if req.JobDescription != "" {
		tracked = extractJobKeywords(req.JobDescription)
	} else {
		tracked = append(tracked, seniorityKeywords["high"]...)
		tracked = append(tracked, seniorityKeywords["medium"]...)
	}

	text := resumeText(req.Resume)
	totalWords := wordCount(text)

	var analyses []types.KeywordAnalysis
	for _, keyword := range tracked {
		count := countOccurrences(text, keyword)
		if count == 0 {
			continue
		}
		density := 0.0
		if totalWords > 0 {
			density = float64(count) / float64(totalWords) * 100
		}
		analyses = append(analyses, types.KeywordAnalysis{
			Keyword:    keyword,
			Count:      count,
			Density:    density,
			Importance: keywordImportance(keyword),
			Placements: keywordPlacements(req.Resume, keyword),
		})
	}

	sort.SliceStable(analyses, func(i, j int) bool { return analyses[i].Count > analyses[j].Count })
	return analyses
}

// analyzeFormatting lists concrete font and layout hazards
func analyzeFormatting(template *types.ResumeTemplate) []string {
	var issues []string
	if !templates.IsATSApprovedFont(template.Styling.Fonts.Heading.Family) {
		issues = append(issues, fmt.Sprintf("Heading font %q is not reliably rendered by ATS parsers", template.Styling.Fonts.Heading.Family))
	}
	if !templates.IsATSApprovedFont(template.Styling.Fonts.Body.Family) {
		issues = append(issues, fmt.Sprintf("Body font %q is not reliably rendered by ATS parsers", template.Styling.Fonts.Body.Family))
	}
	if hasComplexFormatting(template) {
		issues = append(issues, fmt.Sprintf("%d-column layout risks out-of-order parsing", template.Layout.Columns))
	}
	if size := template.Styling.Fonts.Body.SizePx; size > 0 && size < 10 {
		issues = append(issues, fmt.Sprintf("Body font size %.0fpx is below the readable minimum of 10px", size))
	}
	return issues
}

// analyzeStructure compares the resume's section order to the canonical one
func analyzeStructure(resume *types.Resume) types.StructureAnalysis {
	current := derivedSectionOrder(resume)

	present := make(map[string]bool, len(current))
	for _, section := range current {
		present[section] = true
	}
	var missing []string
	for _, section := range canonicalSectionOrder {
		if !present[section] {
			missing = append(missing, section)
		}
	}

	var redundant []string
	for name := range resume.CustomSections {
		redundant = append(redundant, name)
	}
	sort.Strings(redundant)

	optimal := make([]string, len(canonicalSectionOrder))
	copy(optimal, canonicalSectionOrder)

	return types.StructureAnalysis{
		CurrentOrder:      current,
		OptimalOrder:      optimal,
		MissingSections:   missing,
		RedundantSections: redundant,
	}
}
