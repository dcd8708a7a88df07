package types

// OptimizationPriority orders optimization actions
type OptimizationPriority string

// Priorities, highest first
const (
	PriorityHigh   OptimizationPriority = "high"
	PriorityMedium OptimizationPriority = "medium"
	PriorityLow    OptimizationPriority = "low"
)

// WarningSeverity tags ATS warnings
type WarningSeverity string

// Severities, most severe first
const (
	SeverityCritical WarningSeverity = "critical"
	SeverityHigh     WarningSeverity = "high"
	SeverityMedium   WarningSeverity = "medium"
	SeverityLow      WarningSeverity = "low"
)

// OptimizeRequest carries everything a scoring pass needs. JobDescription,
// TargetIndustry and TargetCompany are optional; scores that depend on them
// fall back to fixed midpoints when absent.
type OptimizeRequest struct {
	Resume         *Resume                `json:"resume"`
	Template       *ResumeTemplate        `json:"template"`
	Customization  *TemplateCustomization `json:"customization,omitempty"`
	JobDescription string                 `json:"job_description,omitempty"`
	TargetIndustry string                 `json:"target_industry,omitempty"`
	TargetCompany  string                 `json:"target_company,omitempty"`
}

// ScoreBreakdown holds the six independent sub-scores, each in [0,100]
type ScoreBreakdown struct {
	Formatting   float64 `json:"formatting"`
	Keywords     float64 `json:"keywords"`
	Structure    float64 `json:"structure"`
	Readability  float64 `json:"readability"`
	Completeness float64 `json:"completeness"`
	Relevance    float64 `json:"relevance"`
}

// ATSSystemReport is the simulated outcome for one named ATS product
type ATSSystemReport struct {
	Name        string   `json:"name"`
	MarketShare float64  `json:"market_share"`
	Score       float64  `json:"score"`
	Issues      []string `json:"issues,omitempty"`
}

// CompatibilityReport aggregates the per-system simulations
type CompatibilityReport struct {
	Systems              []ATSSystemReport `json:"systems"`
	OverallCompatibility float64           `json:"overall_compatibility"`
	GuaranteedParsing    bool              `json:"guaranteed_parsing"`
}

// Optimization is one prioritized, actionable improvement
type Optimization struct {
	Type        string               `json:"type"`
	Priority    OptimizationPriority `json:"priority"`
	Description string               `json:"description"`
	Impact      float64              `json:"impact"`
	Details     []string             `json:"details,omitempty"`
}

// ATSWarning is a severity-tagged caution
type ATSWarning struct {
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
}

// BenchmarkComparison positions the score against industry data
type BenchmarkComparison struct {
	Industry        string  `json:"industry"`
	IndustryAverage float64 `json:"industry_average"`
	TopDecile       float64 `json:"top_decile"`
	Percentile      float64 `json:"percentile"`
}

// SectionAnalysis scores one resume section
type SectionAnalysis struct {
	Section  string  `json:"section"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// KeywordAnalysis describes one keyword found in (or missing from) the resume
type KeywordAnalysis struct {
	Keyword    string   `json:"keyword"`
	Count      int      `json:"count"`
	Density    float64  `json:"density"`
	Importance string   `json:"importance"`
	Placements []string `json:"placements,omitempty"`
}

// StructureAnalysis compares section ordering against the canonical order
type StructureAnalysis struct {
	CurrentOrder      []string `json:"current_order"`
	OptimalOrder      []string `json:"optimal_order"`
	MissingSections   []string `json:"missing_sections,omitempty"`
	RedundantSections []string `json:"redundant_sections,omitempty"`
}

// Achievement is one extracted accomplishment with a naive category
type Achievement struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// ContentAnalysis summarizes writing-quality heuristics
type ContentAnalysis struct {
	ActionVerbCount     int           `json:"action_verb_count"`
	ActionVerbStrength  float64       `json:"action_verb_strength"`
	QuantifiableMetrics []string      `json:"quantifiable_metrics,omitempty"`
	StrongPhrases       []string      `json:"strong_phrases,omitempty"`
	WeakPhrases         []string      `json:"weak_phrases,omitempty"`
	Achievements        []Achievement `json:"achievements,omitempty"`
}

// DetailedAnalysis bundles the per-axis sub-reports
type DetailedAnalysis struct {
	Sections   []SectionAnalysis `json:"sections"`
	Keywords   []KeywordAnalysis `json:"keywords"`
	Formatting []string          `json:"formatting,omitempty"`
	Structure  StructureAnalysis `json:"structure"`
	Content    ContentAnalysis   `json:"content"`
}

// ATSOptimizationResult is the complete scoring and recommendation report.
// Computed fresh per request; the engine does not cache it.
type ATSOptimizationResult struct {
	OverallScore    float64             `json:"overall_score"`
	ScoreBreakdown  ScoreBreakdown      `json:"score_breakdown"`
	Compatibility   CompatibilityReport `json:"compatibility"`
	Optimizations   []Optimization      `json:"optimizations"`
	Warnings        []ATSWarning        `json:"warnings"`
	Recommendations []string            `json:"recommendations"`
	Benchmark       BenchmarkComparison `json:"benchmark"`
	Detailed        DetailedAnalysis    `json:"detailed_analysis"`
}

// RealTimeScore is the lightweight single-section feedback payload. It must
// never interrupt editing: failures degrade to a zero score with an issue.
type RealTimeScore struct {
	Score          float64  `json:"score"`
	Issues         []string `json:"issues"`
	Suggestions    []string `json:"suggestions"`
	KeywordMatches []string `json:"keyword_matches,omitempty"`
}

// ATSFriendlyVersion is a derived template/customization pair tuned for
// parsing reliability, with the applied changes and an impact estimate.
type ATSFriendlyVersion struct {
	Template         *ResumeTemplate        `json:"template"`
	Customization    *TemplateCustomization `json:"customization"`
	Changes          []string               `json:"changes"`
	ScoreImprovement float64                `json:"score_improvement"`
}
