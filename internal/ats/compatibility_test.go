package ats

import (
	"testing"

	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compatibilityRequest() *types.OptimizeRequest {
	return &types.OptimizeRequest{
		Resume:   scoringResume(),
		Template: scoringTemplate(),
	}
}

func TestSimulateCompatibility_CleanResumeScoresBaseline(t *testing.T) {
	report := simulateCompatibility(compatibilityRequest())

	require.Len(t, report.Systems, 8)
	for _, system := range report.Systems {
		assert.Equal(t, 80.0, system.Score, system.Name)
		assert.Empty(t, system.Issues, system.Name)
	}
	assert.InDelta(t, 0.8, report.OverallCompatibility, 0.001)
	// The baseline sits exactly at the bar, and the bar is strict.
	assert.False(t, report.GuaranteedParsing)
}

func TestSimulateCompatibility_CustomSectionsPenalizeFlaggedSystems(t *testing.T) {
	req := compatibilityRequest()
	req.Resume.CustomSections = map[string]any{"patents": []string{"US-123"}}

	report := simulateCompatibility(req)

	for _, system := range report.Systems {
		switch system.Name {
		case "Taleo", "iCIMS", "SuccessFactors", "Jobvite":
			assert.Equal(t, 60.0, system.Score, system.Name)
			assert.Contains(t, system.Issues, "custom section handling")
		default:
			assert.Equal(t, 80.0, system.Score, system.Name)
		}
	}
	assert.Less(t, report.OverallCompatibility, 0.8)
	assert.False(t, report.GuaranteedParsing)
}

func TestSimulateCompatibility_MultiColumnAndFontPenalties(t *testing.T) {
	req := compatibilityRequest()
	req.Template.Layout.Columns = 3
	req.Template.Styling.Fonts.Heading.Family = "Papyrus"

	report := simulateCompatibility(req)

	var workday, greenhouse types.ATSSystemReport
	for _, system := range report.Systems {
		switch system.Name {
		case "Workday":
			workday = system
		case "Greenhouse":
			greenhouse = system
		}
	}
	// Workday flags multi-column layouts but not font rendering.
	assert.Equal(t, 70.0, workday.Score)
	// Greenhouse flags font rendering but not multi-column layouts.
	assert.Equal(t, 65.0, greenhouse.Score)
}

func TestATSRoster_MarketSharesSumToOne(t *testing.T) {
	total := 0.0
	for _, system := range atsRoster {
		total += system.marketShare
	}
	assert.InDelta(t, 1.0, total, 0.001)
}
