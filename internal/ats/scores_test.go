package ats

import (
	"testing"

	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func scoringTemplate() *types.ResumeTemplate {
	return &types.ResumeTemplate{
		ID:       "scoring-fixture",
		Name:     "Scoring Fixture",
		Category: types.CategoryProfessional,
		Layout:   types.LayoutConfig{Format: "single-column", Columns: 1},
		Styling: types.StylingConfig{
			Fonts: types.FontConfig{
				Heading: types.FontSpec{Family: "Georgia", SizePx: 24},
				Body:    types.FontSpec{Family: "Arial", SizePx: 11},
			},
			Colors: types.ColorPalette{Primary: "#2563eb", Text: "#111111", Background: "#ffffff"},
		},
	}
}

func scoringResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: types.PersonalInfo{
			FullName: "Dana Whitfield",
			Email:    "dana@example.com",
			Phone:    "(415) 555-0142",
		},
		Summary: "Led backend platform work across payments and infrastructure.",
		Experience: []types.Experience{
			{
				Position:    "Staff Engineer",
				Company:     "Initech",
				Description: "Led a team of 6 people. Reduced deploy time by 40% and migrated services to the cloud.",
			},
		},
		Education: []types.Education{{Institution: "State University", Degree: "BS Computer Science"}},
		Skills:    []types.Skill{{Name: "Go"}, {Name: "React"}, {Name: "PostgreSQL"}},
	}
}

func TestScoreFormatting_RewardsParserFriendlyTemplate(t *testing.T) {
	score := scoreFormatting(scoringTemplate())

	// base 50 + approved font 15 + single column 15 + white background 10
	assert.Equal(t, 90.0, score)
}

func TestScoreFormatting_TwoColumnNonATSFont(t *testing.T) {
	template := scoringTemplate()
	template.Layout.Columns = 2
	template.Styling.Fonts.Heading.Family = "Comic Sans"
	template.Styling.Colors.Background = "#f8fafc"

	// No bonuses apply, and two columns is not yet complex formatting.
	assert.Equal(t, 50.0, scoreFormatting(template))
}

func TestScoreFormatting_ComplexFormattingPenalty(t *testing.T) {
	template := scoringTemplate()
	template.Layout.Columns = 3

	// base 50 + font 15 + white 10, minus the complexity penalty 20
	assert.Equal(t, 55.0, scoreFormatting(template))
}

func TestScoreKeywords_FixedMidpointWithoutJobDescription(t *testing.T) {
	assert.Equal(t, 50.0, scoreKeywords("", resumeText(scoringResume())))
}

func TestScoreKeywords_ProportionOfMatchedTerms(t *testing.T) {
	// "AWS" is only three characters and is not extracted as a keyword.
	score := scoreKeywords("React Kubernetes AWS", resumeText(scoringResume()))

	// keywords = {react, kubernetes}; only react appears in the resume
	assert.Equal(t, 50.0, score)
}

func TestExtractJobKeywords_DropsShortWordsAndDuplicates(t *testing.T) {
	keywords := extractJobKeywords("Build and ship React, React, and Go services.")

	assert.Equal(t, []string{"build", "ship", "react", "services"}, keywords)
}

func TestScoreStructure_FullCanonicalResume(t *testing.T) {
	resume := scoringResume()

	// base 50 + full prefix credit (5 of 7 sections, all leading) + core 30
	score := scoreStructure(resume)
	assert.InDelta(t, 50+20*5.0/7.0+30, score, 0.001)
}

func TestScoreStructure_MissingSummaryBreaksPrefix(t *testing.T) {
	resume := scoringResume()
	resume.Summary = ""

	// Only "Contact" matches before the canonical order expects "Summary".
	score := scoreStructure(resume)
	assert.InDelta(t, 50+20*1.0/7.0+30, score, 0.001)
}

func TestScoreReadability_PenalizesRunOnSentences(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "word "
	}
	assert.Equal(t, 60.0, scoreReadability(long+"."))
}

func TestScoreReadability_PenalizesJargonDensity(t *testing.T) {
	text := "We leverage synergy. Leverage the paradigm. Synergy and leverage disrupt."

	assert.Equal(t, 60.0, scoreReadability(text))
}

func TestScoreCompleteness_TwentyPointsPerCoreSection(t *testing.T) {
	resume := scoringResume()
	assert.Equal(t, 100.0, scoreCompleteness(resume))

	resume.Skills = nil
	resume.Summary = ""
	assert.Equal(t, 60.0, scoreCompleteness(resume))
}

func TestScoreRelevance_IndustryKeywordCoverage(t *testing.T) {
	assert.Equal(t, 50.0, scoreRelevance("", resumeText(scoringResume())))
	assert.Equal(t, 50.0, scoreRelevance("astrology", resumeText(scoringResume())))

	// "cloud" and "infrastructure" from the technology dictionary appear.
	score := scoreRelevance("Technology", resumeText(scoringResume()))
	assert.InDelta(t, 20.0, score, 0.001)
}

func TestCombineScores_WeightedAndBounded(t *testing.T) {
	breakdown := types.ScoreBreakdown{
		Formatting: 100, Keywords: 100, Structure: 100,
		Readability: 100, Completeness: 100, Relevance: 100,
	}
	assert.Equal(t, 100.0, combineScores(breakdown))

	breakdown = types.ScoreBreakdown{
		Formatting: 50, Keywords: 50, Structure: 50,
		Readability: 70, Completeness: 80, Relevance: 50,
	}
	expected := 0.20*50 + 0.25*50 + 0.20*50 + 0.15*70 + 0.10*80 + 0.10*50
	assert.InDelta(t, expected, combineScores(breakdown), 0.001)
}
