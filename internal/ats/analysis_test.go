package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeContent_CountsVerbsAndMetrics(t *testing.T) {
	resume := scoringResume()

	content := analyzeContent(resume)

	// "Led" appears in the summary and the experience description.
	assert.GreaterOrEqual(t, content.ActionVerbCount, 2)
	assert.Greater(t, content.ActionVerbStrength, 0.0)
	assert.Contains(t, content.QuantifiableMetrics, "40%")
	assert.Contains(t, content.QuantifiableMetrics, "6 people")
}

func TestAnalyzeContent_FlagsWeakPhrases(t *testing.T) {
	resume := scoringResume()
	resume.Experience[0].Description = "Responsible for maintenance. Worked on internal tools."

	content := analyzeContent(resume)

	assert.Contains(t, content.WeakPhrases, "responsible for")
	assert.Contains(t, content.WeakPhrases, "worked on")
}

func TestExtractAchievements_CategorizesSentences(t *testing.T) {
	resume := scoringResume()
	resume.Experience[0].Description = "Led a platform team of 8 engineers. Reduced infrastructure cost by 30%. Migrated the billing system to event streaming."

	achievements := extractAchievements(resume)

	require.Len(t, achievements, 3)
	assert.Equal(t, "leadership", achievements[0].Category)
	assert.Equal(t, "financial", achievements[1].Category)
	assert.Equal(t, "technical", achievements[2].Category)
}

func TestExtractAchievements_IncludesAchievementBullets(t *testing.T) {
	resume := scoringResume()
	resume.Experience[0].Description = "Ran the payments platform"
	resume.Experience[0].Achievements = []string{"Increased checkout conversion by 12%"}

	achievements := extractAchievements(resume)

	require.Len(t, achievements, 1)
	assert.Contains(t, achievements[0].Text, "Increased checkout conversion")
}

func TestAnalyzeSections_SummaryScoring(t *testing.T) {
	resume := scoringResume()

	analyses := analyzeSections(resume)

	require.NotEmpty(t, analyses)
	summary := analyses[0]
	assert.Equal(t, "summary", summary.Section)
	// In-band length plus an achievement keyword ("led").
	assert.Equal(t, 100.0, summary.Score)
}

func TestAnalyzeSections_ShortSummaryGetsFeedback(t *testing.T) {
	resume := scoringResume()
	resume.Summary = "Engineer."

	analyses := analyzeSections(resume)

	require.NotEmpty(t, analyses)
	assert.Contains(t, analyses[0].Feedback, "characters")
	assert.Less(t, analyses[0].Score, 100.0)
}

func TestAnalyzeKeywords_TracksJobDescriptionTerms(t *testing.T) {
	req := compatibilityRequest()
	req.JobDescription = "React PostgreSQL Kubernetes"

	analyses := analyzeKeywords(req)

	require.Len(t, analyses, 2)
	keywords := []string{analyses[0].Keyword, analyses[1].Keyword}
	assert.ElementsMatch(t, []string{"react", "postgresql"}, keywords)
	for _, analysis := range analyses {
		assert.Contains(t, analysis.Placements, "skills")
		assert.Greater(t, analysis.Density, 0.0)
	}
}

func TestAnalyzeFormatting_ListsFontAndLayoutIssues(t *testing.T) {
	template := scoringTemplate()
	template.Styling.Fonts.Heading.Family = "Papyrus"
	template.Layout.Columns = 3
	template.Styling.Fonts.Body.SizePx = 8

	issues := analyzeFormatting(template)

	require.Len(t, issues, 3)
	assert.Contains(t, issues[0], "Papyrus")
}

func TestAnalyzeStructure_MissingAndRedundantSections(t *testing.T) {
	resume := scoringResume()
	resume.CustomSections = map[string]any{"patents": "US-123", "awards": "Best Hack"}

	structure := analyzeStructure(resume)

	assert.Equal(t, []string{"Contact", "Summary", "Experience", "Education", "Skills"}, structure.CurrentOrder)
	assert.Equal(t, canonicalSectionOrder, structure.OptimalOrder)
	assert.Equal(t, []string{"Projects", "Certifications"}, structure.MissingSections)
	assert.Equal(t, []string{"awards", "patents"}, structure.RedundantSections)
}

func TestKeywordImportance_SeniorityBuckets(t *testing.T) {
	assert.Equal(t, "high", keywordImportance("architected"))
	assert.Equal(t, "medium", keywordImportance("implemented"))
	assert.Equal(t, "low", keywordImportance("spreadsheet"))
}

func TestComputeDetailedAnalysis_AssemblesAllAxes(t *testing.T) {
	req := compatibilityRequest()
	req.JobDescription = "React platform engineer"

	detailed := computeDetailedAnalysis(req)

	assert.NotEmpty(t, detailed.Sections)
	assert.NotEmpty(t, detailed.Keywords)
	assert.Equal(t, canonicalSectionOrder, detailed.Structure.OptimalOrder)
	assert.NotZero(t, detailed.Content.ActionVerbCount)
}
