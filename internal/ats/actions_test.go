package ats

import (
	"testing"

	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptimizations_NoneForCleanRequest(t *testing.T) {
	optimizations := buildOptimizations(compatibilityRequest())

	assert.Empty(t, optimizations)
}

func TestBuildOptimizations_NonATSFont(t *testing.T) {
	req := compatibilityRequest()
	req.Template.Styling.Fonts.Body.Family = "Comic Sans"

	optimizations := buildOptimizations(req)

	require.Len(t, optimizations, 1)
	assert.Equal(t, "font", optimizations[0].Type)
	assert.Equal(t, types.PriorityHigh, optimizations[0].Priority)
	assert.Equal(t, 15.0, optimizations[0].Impact)
}

func TestBuildOptimizations_MissingJobKeywords(t *testing.T) {
	req := compatibilityRequest()
	req.JobDescription = "Kubernetes Terraform React"

	optimizations := buildOptimizations(req)

	require.Len(t, optimizations, 1)
	action := optimizations[0]
	assert.Equal(t, "keywords", action.Type)
	assert.Equal(t, 20.0, action.Impact)
	assert.ElementsMatch(t, []string{"kubernetes", "terraform"}, action.Details)
}

func TestBuildOptimizations_MissingSections(t *testing.T) {
	req := compatibilityRequest()
	req.Resume.Education = nil
	req.Resume.Skills = nil

	optimizations := buildOptimizations(req)

	require.Len(t, optimizations, 1)
	assert.Equal(t, "sections", optimizations[0].Type)
	assert.Equal(t, types.PriorityMedium, optimizations[0].Priority)
	assert.Equal(t, []string{"Education", "Skills"}, optimizations[0].Details)
}

func TestBuildWarnings_CleanRequestHasNone(t *testing.T) {
	assert.Empty(t, buildWarnings(compatibilityRequest()))
}

func TestBuildWarnings_SeverityTagging(t *testing.T) {
	req := compatibilityRequest()
	req.Template.Layout.Columns = 3
	req.Resume.PersonalInfo.Phone = ""
	req.Resume.Experience = []types.Experience{{Position: "Engineer", Company: "Initech", Description: "Wrote code"}}

	warnings := buildWarnings(req)

	require.Len(t, warnings, 3)
	assert.Equal(t, types.SeverityCritical, warnings[0].Severity)
	assert.Equal(t, types.SeverityHigh, warnings[1].Severity)
	assert.Equal(t, types.SeverityMedium, warnings[2].Severity)
}

func TestBuildRecommendations_BoilerplateAlwaysPresent(t *testing.T) {
	recommendations := buildRecommendations(compatibilityRequest())

	assert.Len(t, recommendations, 3)
}

func TestBuildRecommendations_JobDescriptionAddsConditional(t *testing.T) {
	req := compatibilityRequest()
	req.JobDescription = "Senior platform engineer"

	recommendations := buildRecommendations(req)

	assert.Len(t, recommendations, 5)
}
