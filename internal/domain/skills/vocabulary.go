package skills

// Vocabulary is the static set of recognized skill terms, grouped by
// category. Extraction iterates categories in declaration order, so the
// output order of ExtractSkills is stable across calls.
type Vocabulary struct {
	Languages   []string
	Frameworks  []string
	Databases   []string
	Cloud       []string
	Frontend    []string
	Methodology []string
	DataScience []string
	Mobile      []string
	General     []string
}

// DefaultVocabulary returns the built-in term lists. Terms are matched by
// lowercase substring containment, so "java" also hits "javascript"; that
// imprecision is part of the matching contract and relied on by callers.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Languages: []string{
			"javascript", "python", "java", "c#", "c++", "php", "ruby",
			"swift", "typescript", "golang",
		},
		Frameworks: []string{
			"react", "angular", "vue", "node.js", "express", "django",
			"flask", "spring", "laravel", ".net",
		},
		Databases: []string{
			"mongodb", "mysql", "postgresql", "sqlite", "oracle", "sql",
			"nosql", "firebase", "redis",
		},
		Cloud: []string{
			"aws", "azure", "google cloud", "docker", "kubernetes",
			"jenkins", "git", "github", "gitlab",
		},
		Frontend: []string{
			"html", "css", "sass", "less", "tailwind", "bootstrap",
			"material-ui", "webpack", "babel",
		},
		Methodology: []string{
			"rest api", "graphql", "microservices", "ci/cd", "agile",
			"scrum", "jira", "confluence",
		},
		DataScience: []string{
			"machine learning", "deep learning", "ai", "data science",
			"data analysis", "data visualization", "tensorflow", "pytorch",
			"pandas", "numpy", "scikit-learn", "r", "tableau", "power bi",
		},
		Mobile: []string{
			"mobile development", "ios", "android", "react native",
			"flutter", "xamarin",
		},
		General: []string{
			"devops", "sre", "security", "blockchain", "cloud computing",
		},
	}
}

// Terms flattens the vocabulary into a single ordered list.
func (v Vocabulary) Terms() []string {
	groups := [][]string{
		v.Languages, v.Frameworks, v.Databases, v.Cloud, v.Frontend,
		v.Methodology, v.DataScience, v.Mobile, v.General,
	}
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]string, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
