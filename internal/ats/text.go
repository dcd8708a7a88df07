package ats

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// resumeText concatenates the searchable prose of a resume: name, summary,
// experience descriptions, education degrees, and skill names. Keyword and
// readability scoring both run over this haystack.
func resumeText(resume *types.Resume) string {
	var b strings.Builder
	b.WriteString(resume.PersonalInfo.FullName)
	b.WriteString(" ")
	b.WriteString(resume.Summary)
	for _, exp := range resume.Experience {
		b.WriteString(" ")
		b.WriteString(exp.Description)
	}
	for _, edu := range resume.Education {
		b.WriteString(" ")
		b.WriteString(edu.Degree)
	}
	for _, skill := range resume.Skills {
		b.WriteString(" ")
		b.WriteString(skill.Name)
	}
	return b.String()
}

// sentences splits text on terminal punctuation, dropping empty fragments
func sentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// containsWord reports a case-insensitive substring match
func containsWord(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// countOccurrences counts case-insensitive non-overlapping occurrences
func countOccurrences(haystack, needle string) int {
	return strings.Count(strings.ToLower(haystack), strings.ToLower(needle))
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
