package jobsearch

import "strings"

// Classification lists for the query builder. A user skill counts as a
// language or framework when it contains one of these terms (framework terms
// are compared with dots stripped, so "Node.js" matches "nodejs").
var (
	queryLanguages = []string{
		"javascript", "python", "java", "c#", "c++", "php", "ruby",
		"swift", "typescript", "golang",
	}
	queryFrameworks = []string{
		"react", "angular", "vue", "node.js", "express", "django",
		"flask", "spring", "laravel", ".net",
	}
)

const querySuffix = "developer jobs"

// BuildQuery turns a skill list and optional location into the provider
// search string: up to two language skills and one framework skill
// (falling back to the first two raw skills when neither bucket matches),
// de-duplicated, then the location, the "developer jobs" suffix, and the
// country marker when the query does not already mention it.
func BuildQuery(skills []string, location string) string {
	var languages, frameworks []string
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		for _, lang := range queryLanguages {
			if strings.Contains(lower, lang) {
				languages = append(languages, skill)
				break
			}
		}
		for _, fw := range queryFrameworks {
			if strings.Contains(lower, strings.ReplaceAll(fw, ".", "")) {
				frameworks = append(frameworks, skill)
				break
			}
		}
	}

	terms := make([]string, 0, 3)
	if len(languages) > 2 {
		languages = languages[:2]
	}
	terms = append(terms, languages...)
	if len(frameworks) > 0 {
		terms = append(terms, frameworks[0])
	}
	if len(terms) == 0 {
		if len(skills) > 2 {
			terms = skills[:2]
		} else {
			terms = skills
		}
	}

	seen := make(map[string]struct{}, len(terms))
	unique := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}

	parts := make([]string, 0, len(unique)+3)
	parts = append(parts, unique...)
	if loc := strings.TrimSpace(location); loc != "" {
		parts = append(parts, loc)
	}
	parts = append(parts, querySuffix)

	query := strings.Join(parts, " ")
	if !strings.Contains(strings.ToLower(query), "india") {
		query += " India"
	}
	return query
}
