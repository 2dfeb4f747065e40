package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type recommendationCacheKeyInput struct {
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
	Page     int      `json:"page"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsRecommendationCacheKey derives a stable cache key from the inputs that
// determine a recommendation page. Skill order matters upstream (it shapes
// the search query), so the key preserves it.
func JobsRecommendationCacheKey(skills []string, location string, page int) string {
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		normalized = append(normalized, s)
	}

	in := recommendationCacheKeyInput{
		Skills:   normalized,
		Location: normalizeCacheValue(location),
		Page:     page,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:recommendations:" + hex.EncodeToString(sum[:])
}
