package skills

import "strings"

// Extractor recognizes vocabulary terms inside free-text job descriptions.
type Extractor struct {
	terms []string
}

func NewExtractor(v Vocabulary) *Extractor {
	return &Extractor{terms: v.Terms()}
}

// ExtractSkills returns the vocabulary terms contained in text, in
// vocabulary order and canonical casing, de-duplicated case-insensitively.
// Empty input yields an empty slice; the function never fails.
func (e *Extractor) ExtractSkills(text string) []string {
	found := make([]string, 0)
	if e == nil || strings.TrimSpace(text) == "" {
		return found
	}

	lower := strings.ToLower(text)
	seen := make(map[string]struct{}, len(e.terms))
	for _, term := range e.terms {
		key := strings.ToLower(term)
		if !containsTerm(lower, key) {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, term)
	}
	return found
}

// containsTerm applies the substring containment policy, except for bare
// one- and two-letter terms ("r", "ai"), which would otherwise hit nearly
// any text; those must appear as standalone tokens. Terms with symbols
// ("c#", "c++") keep plain containment.
func containsTerm(lowerText, lowerTerm string) bool {
	if len(lowerTerm) > 2 || !isAlpha(lowerTerm) {
		return strings.Contains(lowerText, lowerTerm)
	}

	for i := 0; ; i += len(lowerTerm) {
		j := strings.Index(lowerText[i:], lowerTerm)
		if j < 0 {
			return false
		}
		i += j
		if boundaryBefore(lowerText, i) && boundaryAfter(lowerText, i+len(lowerTerm)) {
			return true
		}
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return len(s) > 0
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	return !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
