package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// strongActionVerbs open achievement statements that parse and read well
var strongActionVerbs = []string{
	"led", "architected", "launched", "drove", "transformed",
	"scaled", "spearheaded", "delivered", "owned",
}

// weakActionVerbs are still verbs, but signal passive involvement
var weakActionVerbs = []string{
	"helped", "assisted", "supported", "participated", "contributed",
	"worked", "involved", "handled",
}

// weakPhrases are duty-style openers that bury the accomplishment
var weakPhrases = []string{
	"responsible for", "duties included", "worked on", "helped with",
	"tasked with", "in charge of",
}

// strongPhrases signal quantified, outcome-oriented writing
var strongPhrases = []string{
	"resulting in", "which led to", "increased by", "reduced by",
	"ahead of schedule", "under budget",
}

// metricPattern detects quantifiable results: percentages, dollar amounts,
// and counted durations or headcounts.
var metricPattern = regexp.MustCompile(`\d+%|\$\d+|\d+\s+(years|months|people|teams)`)

// achievementKeywords mark a sentence as describing an accomplishment
var achievementKeywords = []string{
	"led", "increased", "reduced", "launched", "saved",
	"improved", "grew", "delivered", "migrated", "automated",
}

// achievementCategories map trigger words to a naive category bucket, in
// match-priority order.
var achievementCategories = []struct {
	category string
	triggers []string
}{
	{"leadership", []string{"led", "managed", "mentored", "team", "hired"}},
	{"financial", []string{"revenue", "cost", "budget", "$", "saved"}},
	{"customer", []string{"customer", "client", "user", "satisfaction", "retention"}},
	{"technical", []string{"built", "architected", "migrated", "automated", "engineered", "launched"}},
	{"operational", []string{"process", "efficiency", "reduced", "streamlined", "improved"}},
}

// analyzeContent runs the writing-quality heuristics over the resume prose
func analyzeContent(resume *types.Resume) types.ContentAnalysis {
	text := resumeText(resume)
	lowered := strings.ToLower(text)

	strongCount := 0
	weakCount := 0
	for _, verb := range strongActionVerbs {
		strongCount += countOccurrences(lowered, verb)
	}
	for _, verb := range weakActionVerbs {
		weakCount += countOccurrences(lowered, verb)
	}

	total := strongCount + weakCount
	strength := 0.0
	if total > 0 {
		strength = float64(strongCount) / float64(total)
	}

	var strong, weak []string
	for _, phrase := range strongPhrases {
		if strings.Contains(lowered, phrase) {
			strong = append(strong, phrase)
		}
	}
	for _, phrase := range weakPhrases {
		if strings.Contains(lowered, phrase) {
			weak = append(weak, phrase)
		}
	}

	return types.ContentAnalysis{
		ActionVerbCount:     total,
		ActionVerbStrength:  strength,
		QuantifiableMetrics: metricPattern.FindAllString(text, -1),
		StrongPhrases:       strong,
		WeakPhrases:         weak,
		Achievements:        extractAchievements(resume),
	}
}

// extractAchievements scans experience prose sentence by sentence, keeping
// sentences that contain an achievement keyword and bucketing each into a
// category.
func extractAchievements(resume *types.Resume) []types.Achievement {
	var achievements []types.Achievement
	for _, exp := range resume.Experience {
		prose := exp.Description
		if len(exp.Achievements) > 0 {
			prose += ". " + strings.Join(exp.Achievements, ". ")
		}
		for _, sentence := range sentences(prose) {
			if !containsAchievementKeyword(sentence) {
				continue
			}
			achievements = append(achievements, types.Achievement{
				Text:     sentence,
				Category: categorizeAchievement(sentence),
			})
		}
	}
	return achievements
}

func containsAchievementKeyword(sentence string) bool {
	lowered := strings.ToLower(sentence)
	for _, keyword := range achievementKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// categorizeAchievement picks the first category with a matching trigger,
// defaulting to operational.
func categorizeAchievement(sentence string) string {
	lowered := strings.ToLower(sentence)
	for _, bucket := range achievementCategories {
		for _, trigger := range bucket.triggers {
			if strings.Contains(lowered, trigger) {
				return bucket.category
			}
		}
	}
	return "operational"
}
