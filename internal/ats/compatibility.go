package ats

import "github.com/jonathan/resume-engine/internal/types"

// atsSystem describes one simulated ATS product. Issues name the parsing
// weaknesses the simulation penalizes when the resume or template triggers
// them.
type atsSystem struct {
	name        string
	marketShare float64
	issues      []string
}

const (
	issueTableParsing   = "table parsing"
	issueFontRendering  = "font rendering"
	issueCustomSections = "custom section handling"
	issueMultiColumn    = "multi-column layouts"
)

// atsRoster is the fixed set of simulated systems. Market shares sum to 1.
var atsRoster = []atsSystem{
	{name: "Workday", marketShare: 0.22, issues: []string{issueTableParsing, issueMultiColumn}},
	{name: "Taleo", marketShare: 0.18, issues: []string{issueTableParsing, issueFontRendering, issueCustomSections}},
	{name: "iCIMS", marketShare: 0.15, issues: []string{issueCustomSections, issueMultiColumn}},
	{name: "Greenhouse", marketShare: 0.12, issues: []string{issueFontRendering}},
	{name: "Lever", marketShare: 0.10, issues: []string{issueMultiColumn}},
	{name: "SuccessFactors", marketShare: 0.09, issues: []string{issueTableParsing, issueCustomSections}},
	{name: "ADP Recruiting", marketShare: 0.08, issues: []string{issueTableParsing, issueFontRendering}},
	{name: "Jobvite", marketShare: 0.06, issues: []string{issueCustomSections}},
}

// Per-system score model: every system starts at this baseline and loses
// points for each triggered weakness.
const (
	systemBaseScore      = 80.0
	tablePenalty         = 30.0
	customSectionPenalty = 20.0
	multiColumnPenalty   = 10.0
	fontPenalty          = 15.0
	guaranteedParsingBar = 0.8
)

// simulateCompatibility runs the resume and template against the roster and
// aggregates a market-share-weighted overall compatibility in [0,1].
func simulateCompatibility(req *types.OptimizeRequest) types.CompatibilityReport {
	tables := hasTables(req.Template)
	customSections := len(req.Resume.CustomSections) > 0
	multiColumn := hasComplexFormatting(req.Template)
	badFont := !headingFontApproved(req.Template)

	systems := make([]types.ATSSystemReport, 0, len(atsRoster))
	weighted := 0.0
	for _, system := range atsRoster {
		score := systemBaseScore
		var triggered []string
		for _, issue := range system.issues {
			switch {
			case issue == issueTableParsing && tables:
				score -= tablePenalty
				triggered = append(triggered, issue)
			case issue == issueCustomSections && customSections:
				score -= customSectionPenalty
				triggered = append(triggered, issue)
			case issue == issueMultiColumn && multiColumn:
				score -= multiColumnPenalty
				triggered = append(triggered, issue)
			case issue == issueFontRendering && badFont:
				score -= fontPenalty
				triggered = append(triggered, issue)
			}
		}
		score = clampScore(score)
		systems = append(systems, types.ATSSystemReport{
			Name:        system.name,
			MarketShare: system.marketShare,
			Score:       score,
			Issues:      triggered,
		})
		weighted += system.marketShare * score
	}

	overall := weighted / 100
	return types.CompatibilityReport{
		Systems:              systems,
		OverallCompatibility: overall,
		GuaranteedParsing:    overall > guaranteedParsingBar,
	}
}
