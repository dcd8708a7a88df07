package ats

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/templates"
	"github.com/jonathan/resume-engine/internal/types"
)

// Sub-score weights. They sum to 1.0 so the overall score stays in [0,100].
const (
	formattingWeight   = 0.20
	keywordsWeight     = 0.25
	structureWeight    = 0.20
	readabilityWeight  = 0.15
	completenessWeight = 0.10
	relevanceWeight    = 0.10
)

// canonicalSectionOrder is the ordering ATS parsers handle most reliably
var canonicalSectionOrder = []string{
	"Contact", "Summary", "Experience", "Education", "Skills", "Projects", "Certifications",
}

// jargonWords penalize buzzword-dense writing in the readability score
var jargonWords = []string{
	"synergy", "leverage", "paradigm", "disrupt", "ideate",
	"streamline", "holistic", "bandwidth", "pivot",
}

// computeScoreBreakdown runs the six independent sub-scores
func computeScoreBreakdown(req *types.OptimizeRequest) types.ScoreBreakdown {
	text := resumeText(req.Resume)
	return types.ScoreBreakdown{
		Formatting:   scoreFormatting(req.Template),
		Keywords:     scoreKeywords(req.JobDescription, text),
		Structure:    scoreStructure(req.Resume),
		Readability:  scoreReadability(text),
		Completeness: scoreCompleteness(req.Resume),
		Relevance:    scoreRelevance(req.TargetIndustry, text),
	}
}

// combineScores reduces the breakdown with fixed weights
func combineScores(breakdown types.ScoreBreakdown) float64 {
	return clampScore(formattingWeight*breakdown.Formatting +
		keywordsWeight*breakdown.Keywords +
		structureWeight*breakdown.Structure +
		readabilityWeight*breakdown.Readability +
		completenessWeight*breakdown.Completeness +
		relevanceWeight*breakdown.Relevance)
}

// scoreFormatting rewards parser-friendly presentation: an approved heading
// font, a single-column layout, and a pure white background. Layouts wider
// than two columns are the complex-formatting penalty.
func scoreFormatting(template *types.ResumeTemplate) float64 {
	score := 50.0
	if templates.IsATSApprovedFont(template.Styling.Fonts.Heading.Family) {
		score += 15
	}
	if template.Layout.Columns <= 1 {
		score += 15
	}
	if strings.EqualFold(template.Styling.Colors.Background, "#ffffff") {
		score += 10
	}
	if hasComplexFormatting(template) {
		score -= 20
	}
	return clampScore(score)
}

// hasComplexFormatting is a deliberately narrow proxy: only column count,
// not actual table or graphic detection.
func hasComplexFormatting(template *types.ResumeTemplate) bool {
	return template.Layout.Columns > 2
}

func headingFontApproved(template *types.ResumeTemplate) bool {
	return templates.IsATSApprovedFont(template.Styling.Fonts.Heading.Family)
}

// hasTables reports sections declared as literal tables
func hasTables(template *types.ResumeTemplate) bool {
	for _, section := range template.Sections {
		if section.Type == "table" {
			return true
		}
	}
	return false
}

// scoreKeywords measures job-description coverage. Without a job
// description there is nothing to measure against, so it fixes at the
// midpoint.
func scoreKeywords(jobDescription, text string) float64 {
	if jobDescription == "" {
		return 50
	}
	keywords := extractJobKeywords(jobDescription)
	if len(keywords) == 0 {
		return 50
	}
	matched, _ := matchedKeywords(keywords, text)
	return clampScore(float64(len(matched)) / float64(len(keywords)) * 100)
}

// scoreStructure rewards sections appearing in the canonical order and the
// presence of the four core sections.
func scoreStructure(resume *types.Resume) float64 {
	score := 50.0

	derived := derivedSectionOrder(resume)
	prefix := 0
	for i := 0; i < len(derived) && i < len(canonicalSectionOrder); i++ {
		if derived[i] != canonicalSectionOrder[i] {
			break
		}
		prefix++
	}
	score += 20 * float64(prefix) / float64(len(canonicalSectionOrder))

	if resume.PersonalInfo.FullName != "" && len(resume.Experience) > 0 &&
		len(resume.Education) > 0 && len(resume.Skills) > 0 {
		score += 30
	}
	return clampScore(score)
}

// derivedSectionOrder lists the canonical section names present in the
// resume, in document order.
func derivedSectionOrder(resume *types.Resume) []string {
	var order []string
	if resume.PersonalInfo.FullName != "" {
		order = append(order, "Contact")
	}
	if resume.Summary != "" {
		order = append(order, "Summary")
	}
	if len(resume.Experience) > 0 {
		order = append(order, "Experience")
	}
	if len(resume.Education) > 0 {
		order = append(order, "Education")
	}
	if len(resume.Skills) > 0 {
		order = append(order, "Skills")
	}
	if len(resume.Projects) > 0 {
		order = append(order, "Projects")
	}
	if len(resume.Certifications) > 0 {
		order = append(order, "Certifications")
	}
	return order
}

// scoreReadability penalizes run-on sentences and buzzword density
func scoreReadability(text string) float64 {
	score := 70.0

	split := sentences(text)
	if len(split) > 0 {
		totalWords := 0
		for _, sentence := range split {
			totalWords += wordCount(sentence)
		}
		if float64(totalWords)/float64(len(split)) > 25 {
			score -= 10
		}
	}

	jargonHits := 0
	for _, word := range jargonWords {
		jargonHits += countOccurrences(text, word)
	}
	if jargonHits > 5 {
		score -= 10
	}
	return clampScore(score)
}

// scoreCompleteness grants 20 points per present core section
func scoreCompleteness(resume *types.Resume) float64 {
	score := 0.0
	if resume.PersonalInfo.FullName != "" {
		score += 20
	}
	if resume.Summary != "" {
		score += 20
	}
	if len(resume.Experience) > 0 {
		score += 20
	}
	if len(resume.Education) > 0 {
		score += 20
	}
	if len(resume.Skills) > 0 {
		score += 20
	}
	return clampScore(score)
}

// scoreRelevance measures coverage of the target industry's keyword
// dictionary. Without a recognized industry it fixes at the midpoint.
func scoreRelevance(targetIndustry, text string) float64 {
	keywords, ok := industryKeywords[strings.ToLower(targetIndustry)]
	if !ok {
		return 50
	}
	matched, _ := matchedKeywords(keywords, text)
	return clampScore(float64(len(matched)) / float64(len(keywords)) * 100)
}
