package skills

import (
	"math"
	"strings"
)

// MatchResult is the outcome of scoring a user's skill list against a job
// description.
type MatchResult struct {
	Percentage    int
	MatchedSkills []string
}

// Match reports which user skills appear in description and the resulting
// match percentage. Matching is case-insensitive substring containment, not
// word-boundary aware. MatchedSkills keeps the original casing and the
// original order of userSkills. An empty description or empty skill list
// yields {0, []}; the percentage is always in [0, 100].
func Match(description string, userSkills []string) MatchResult {
	matched := make([]string, 0)
	if description == "" || len(userSkills) == 0 {
		return MatchResult{Percentage: 0, MatchedSkills: matched}
	}

	lower := strings.ToLower(description)
	for _, skill := range userSkills {
		// An empty skill string trivially matches any description;
		// containment of "" is always true and that is kept as-is.
		if strings.Contains(lower, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}

	pct := int(math.Round(float64(len(matched)) / float64(len(userSkills)) * 100))
	if pct > 100 {
		pct = 100
	}
	return MatchResult{Percentage: pct, MatchedSkills: matched}
}
