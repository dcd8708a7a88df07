package ats

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// industryBenchmark holds fixed reference points for one industry
type industryBenchmark struct {
	average   float64
	topDecile float64
}

var industryBenchmarks = map[string]industryBenchmark{
	"technology": {average: 68, topDecile: 90},
	"finance":    {average: 66, topDecile: 88},
	"healthcare": {average: 64, topDecile: 86},
	"marketing":  {average: 62, topDecile: 85},
	"education":  {average: 60, topDecile: 84},
}

// generalBenchmark is used when the target industry is absent or unknown
var generalBenchmark = industryBenchmark{average: 65, topDecile: 88}

// compareBenchmark positions an overall score against the target industry's
// reference points. The percentile is a linear interpolation anchored at the
// industry average (50th) and top decile (90th), clamped to [1,99].
func compareBenchmark(overallScore float64, targetIndustry string) types.BenchmarkComparison {
	industry := strings.ToLower(targetIndustry)
	benchmark, ok := industryBenchmarks[industry]
	if !ok {
		industry = "general"
		benchmark = generalBenchmark
	}

	percentile := 50 + (overallScore-benchmark.average)/(benchmark.topDecile-benchmark.average)*40
	if percentile < 1 {
		percentile = 1
	}
	if percentile > 99 {
		percentile = 99
	}

	return types.BenchmarkComparison{
		Industry:        industry,
		IndustryAverage: benchmark.average,
		TopDecile:       benchmark.topDecile,
		Percentile:      percentile,
	}
}
