package ats

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// realTimeMinLength is the character count below which single-section
// content is flagged as too short.
const realTimeMinLength = 30

// RealTimeATSScore produces cheap as-you-type feedback for one section's
// content. It never returns an error: any internal failure degrades to a
// zero score with an "unavailable" issue so feedback can never interrupt
// editing. Context keywords, when supplied, drive the keyword-match list.
func (o *Optimizer) RealTimeATSScore(content, section string, contextKeywords []string) (result *types.RealTimeScore) {
	defer func() {
		if rec := recover(); rec != nil {
			result = &types.RealTimeScore{
				Score:  0,
				Issues: []string{"real-time scoring unavailable"},
			}
		}
	}()

	score := &types.RealTimeScore{
		Issues:      []string{},
		Suggestions: []string{},
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		score.Issues = append(score.Issues, "section is empty")
		score.Suggestions = append(score.Suggestions, "Add content before scoring")
		return score
	}

	points := 40.0

	if len(trimmed) >= realTimeMinLength {
		points += 20
	} else {
		score.Issues = append(score.Issues, "content is very short")
		score.Suggestions = append(score.Suggestions, "Expand with specific responsibilities or outcomes")
	}

	if startsWithActionVerb(trimmed) {
		points += 20
	} else if section == "experience" || section == "summary" {
		score.Suggestions = append(score.Suggestions, "Open with a strong action verb")
	}

	if metricPattern.MatchString(trimmed) {
		points += 10
	} else if section == "experience" {
		score.Suggestions = append(score.Suggestions, "Quantify the result with a number or percentage")
	}

	for _, phrase := range weakPhrases {
		if containsWord(trimmed, phrase) {
			points -= 10
			score.Issues = append(score.Issues, "contains duty-style phrasing: "+phrase)
			break
		}
	}

	for _, keyword := range contextKeywords {
		if containsWord(trimmed, keyword) {
			score.KeywordMatches = append(score.KeywordMatches, keyword)
		}
	}
	if len(contextKeywords) > 0 && len(score.KeywordMatches) > 0 {
		points += 10
	}

	score.Score = clampScore(points)
	return score
}
