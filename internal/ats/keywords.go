package ats

import (
	"strings"

	"github.com/jonathan/resume-engine/internal/types"
)

// minKeywordLength filters filler words out of job descriptions. Anything
// this short ("and", "the", "for") carries no signal.
const minKeywordLength = 3

// extractJobKeywords pulls candidate keywords from a job description: every
// distinct word longer than minKeywordLength, lowercased, in first-seen
// order. Deliberately a dictionary heuristic, not NLP.
func extractJobKeywords(jobDescription string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, 32)
	for _, raw := range strings.Fields(jobDescription) {
		word := strings.ToLower(strings.Trim(raw, ".,;:()[]\"'!?"))
		if len(word) <= minKeywordLength || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}

// matchedKeywords partitions keywords by presence in the resume haystack
func matchedKeywords(keywords []string, haystack string) (matched, missing []string) {
	lowered := strings.ToLower(haystack)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}
	return matched, missing
}

// industryKeywords are the fixed relevance dictionaries, keyed by lowercase
// industry name.
var industryKeywords = map[string][]string{
	"technology": {
		"software", "engineering", "cloud", "infrastructure", "architecture",
		"microservices", "agile", "testing", "deployment", "scalability",
	},
	"finance": {
		"financial", "analysis", "portfolio", "compliance", "risk",
		"reporting", "forecasting", "audit", "investment", "modeling",
	},
	"healthcare": {
		"patient", "clinical", "compliance", "hipaa", "records",
		"treatment", "diagnosis", "care", "medical", "safety",
	},
	"marketing": {
		"campaign", "brand", "analytics", "conversion", "engagement",
		"content", "seo", "acquisition", "retention", "audience",
	},
	"education": {
		"curriculum", "instruction", "assessment", "learning", "students",
		"pedagogy", "classroom", "development", "outcomes", "engagement",
	},
}

// seniorityKeywords classify keyword importance by the role level they
// signal. Used by the detailed keyword analysis.
var seniorityKeywords = map[string][]string{
	"high": {
		"led", "managed", "architected", "directed", "strategy",
		"mentored", "owned", "drove", "scaled",
	},
	"medium": {
		"built", "designed", "implemented", "developed", "delivered",
		"improved", "automated", "migrated",
	},
}

// keywordImportance buckets a keyword as high, medium, or low
func keywordImportance(keyword string) string {
	for _, senior := range seniorityKeywords["high"] {
		if containsWord(keyword, senior) || containsWord(senior, keyword) {
			return "high"
		}
	}
	for _, mid := range seniorityKeywords["medium"] {
		if containsWord(keyword, mid) || containsWord(mid, keyword) {
			return "medium"
		}
	}
	return "low"
}

// keywordPlacements names the resume areas where a keyword appears
func keywordPlacements(resume *types.Resume, keyword string) []string {
	var placements []string
	if containsWord(resume.Summary, keyword) {
		placements = append(placements, "summary")
	}
	for _, exp := range resume.Experience {
		if containsWord(exp.Description, keyword) {
			placements = append(placements, "experience")
			break
		}
	}
	for _, skill := range resume.Skills {
		if containsWord(skill.Name, keyword) {
			placements = append(placements, "skills")
			break
		}
	}
	for _, edu := range resume.Education {
		if containsWord(edu.Degree, keyword) {
			placements = append(placements, "education")
			break
		}
	}
	return placements
}
