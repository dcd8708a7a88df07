package ats

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-engine/internal/types"
)

// DefaultTimeout bounds a batch optimization call. Keyword extraction and
// the detailed analysis dominate the cost; interactive callers should not
// wait longer than this.
const DefaultTimeout = 10 * time.Second

// Optimizer runs the scoring and analysis branches. It holds no per-request
// state and is safe for concurrent use.
type Optimizer struct {
	timeout time.Duration
}

// Option configures an Optimizer
type Option func(*Optimizer)

// WithTimeout overrides the batch call deadline
func WithTimeout(timeout time.Duration) Option {
	return func(o *Optimizer) { o.timeout = timeout }
}

// New creates an Optimizer with the default timeout unless overridden
func New(opts ...Option) *Optimizer {
	optimizer := &Optimizer{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(optimizer)
	}
	return optimizer
}

// OptimizeForATS runs every analysis branch concurrently and combines the
// results. A failed branch is isolated: it logs, leaves its zero-value
// fallback in place, and never fails the batch. Only an unusable request, a
// blown deadline, or an unexpected top-level failure surfaces as
// *ServiceUnavailableError.
func (o *Optimizer) OptimizeForATS(ctx context.Context, req *types.OptimizeRequest) (result *types.ATSOptimizationResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = &ServiceUnavailableError{Cause: fmt.Errorf("unexpected failure: %v", rec)}
		}
	}()

	if req == nil || req.Resume == nil || req.Template == nil {
		return nil, &ServiceUnavailableError{Cause: errors.New("request requires both a resume and a template")}
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	var (
		breakdown       types.ScoreBreakdown
		compatibility   types.CompatibilityReport
		optimizations   []types.Optimization
		warnings        []types.ATSWarning
		recommendations []string
		detailed        types.DetailedAnalysis
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(branch(gCtx, "score breakdown", func() { breakdown = computeScoreBreakdown(req) }))
	g.Go(branch(gCtx, "compatibility", func() { compatibility = simulateCompatibility(req) }))
	g.Go(branch(gCtx, "optimizations", func() { optimizations = buildOptimizations(req) }))
	g.Go(branch(gCtx, "warnings", func() { warnings = buildWarnings(req) }))
	g.Go(branch(gCtx, "recommendations", func() { recommendations = buildRecommendations(req) }))
	g.Go(branch(gCtx, "detailed analysis", func() { detailed = computeDetailedAnalysis(req) }))

	if waitErr := g.Wait(); waitErr != nil {
		return nil, &ServiceUnavailableError{Cause: waitErr}
	}

	overall := combineScores(breakdown)
	return &types.ATSOptimizationResult{
		OverallScore:    overall,
		ScoreBreakdown:  breakdown,
		Compatibility:   compatibility,
		Optimizations:   optimizations,
		Warnings:        warnings,
		Recommendations: recommendations,
		Benchmark:       compareBenchmark(overall, req.TargetIndustry),
		Detailed:        detailed,
	}, nil
}

// branch wraps one analysis computation: it honors cancellation, recovers
// its own panics so a single branch cannot fail the batch, and logs when it
// degrades to the zero-value fallback.
func branch(ctx context.Context, name string, fn func()) func() error {
	return func() error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("ats: %s branch failed, using fallback: %v", name, rec)
			}
		}()
		fn()
		return nil
	}
}
