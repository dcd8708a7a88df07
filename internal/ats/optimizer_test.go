package ats

import (
	"context"
	"testing"
	"time"

	"github.com/jonathan/resume-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeForATS_ProducesBoundedScores(t *testing.T) {
	optimizer := New()

	result, err := optimizer.OptimizeForATS(context.Background(), compatibilityRequest())

	require.NoError(t, err)
	scores := []float64{
		result.OverallScore,
		result.ScoreBreakdown.Formatting,
		result.ScoreBreakdown.Keywords,
		result.ScoreBreakdown.Structure,
		result.ScoreBreakdown.Readability,
		result.ScoreBreakdown.Completeness,
		result.ScoreBreakdown.Relevance,
	}
	for _, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
	}
	assert.Len(t, result.Compatibility.Systems, 8)
	assert.Len(t, result.Recommendations, 3)
	assert.Equal(t, "general", result.Benchmark.Industry)
}

func TestOptimizeForATS_NoJobDescriptionMidpoints(t *testing.T) {
	optimizer := New()
	req := compatibilityRequest()
	req.Template.Layout.Columns = 2
	req.Template.Styling.Fonts.Heading.Family = "Comic Sans"
	req.Template.Styling.Colors.Background = "#f8fafc"

	result, err := optimizer.OptimizeForATS(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 50.0, result.ScoreBreakdown.Formatting)
	assert.Equal(t, 50.0, result.ScoreBreakdown.Keywords)
}

func TestOptimizeForATS_JobDescriptionDrivesKeywordBranches(t *testing.T) {
	optimizer := New()
	req := compatibilityRequest()
	req.JobDescription = "Platform engineer working with React Kubernetes Terraform"
	req.TargetIndustry = "technology"

	result, err := optimizer.OptimizeForATS(context.Background(), req)

	require.NoError(t, err)
	assert.Greater(t, result.ScoreBreakdown.Keywords, 0.0)
	assert.Equal(t, "technology", result.Benchmark.Industry)
	assert.Len(t, result.Recommendations, 5)

	var keywordAction *types.Optimization
	for i := range result.Optimizations {
		if result.Optimizations[i].Type == "keywords" {
			keywordAction = &result.Optimizations[i]
		}
	}
	require.NotNil(t, keywordAction)
	assert.Contains(t, keywordAction.Details, "kubernetes")
}

func TestOptimizeForATS_IncompleteRequest(t *testing.T) {
	optimizer := New()

	_, err := optimizer.OptimizeForATS(context.Background(), &types.OptimizeRequest{Resume: scoringResume()})

	var unavailable *ServiceUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestOptimizeForATS_NilRequest(t *testing.T) {
	optimizer := New()

	_, err := optimizer.OptimizeForATS(context.Background(), nil)

	var unavailable *ServiceUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestOptimizeForATS_CancelledContext(t *testing.T) {
	optimizer := New(WithTimeout(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := optimizer.OptimizeForATS(ctx, compatibilityRequest())

	var unavailable *ServiceUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestOptimizeForATS_Deterministic(t *testing.T) {
	optimizer := New()
	req := compatibilityRequest()
	req.JobDescription = "Senior Go engineer building cloud infrastructure"

	first, err := optimizer.OptimizeForATS(context.Background(), req)
	require.NoError(t, err)
	second, err := optimizer.OptimizeForATS(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.ScoreBreakdown, second.ScoreBreakdown)
	assert.Equal(t, first.Optimizations, second.Optimizations)
}
