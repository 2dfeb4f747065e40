package skills

import (
	"math"
	"strings"
)

// GapReport compares the skills a job asks for against the skills a user
// has.
type GapReport struct {
	RequiredSkills  []string
	MatchedSkills   []string
	MissingSkills   []string
	MatchPercentage int
}

// AnalyzeGap extracts required skills from jobDescription and splits them
// into matched and missing relative to userSkills (compared
// case-insensitively). The percentage is 0 when no required skills are
// recognized.
func (e *Extractor) AnalyzeGap(jobDescription string, userSkills []string) GapReport {
	required := e.ExtractSkills(jobDescription)

	owned := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		owned[strings.ToLower(s)] = struct{}{}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, req := range required {
		if _, ok := owned[strings.ToLower(req)]; ok {
			matched = append(matched, req)
		} else {
			missing = append(missing, req)
		}
	}

	pct := 0
	if len(required) > 0 {
		pct = int(math.Round(float64(len(matched)) / float64(len(required)) * 100))
	}

	return GapReport{
		RequiredSkills:  required,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchPercentage: pct,
	}
}
