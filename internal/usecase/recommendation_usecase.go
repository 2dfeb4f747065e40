package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"jobpilot/internal/domain/job"
	"jobpilot/internal/domain/skills"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/jobsearch"

	"github.com/google/uuid"
)

const (
	recommendationResultsPerPage = 10
	recommendationCacheTTL       = 10 * time.Minute
)

// RecommendationPage is one scored, sorted page of recommendations.
type RecommendationPage struct {
	Recommendations []job.ScoredPosting `json:"recommendations"`
	Count           int                 `json:"count"`
	TotalResults    int                 `json:"totalResults"`
	TotalPages      int                 `json:"totalPages"`
	CurrentPage     int                 `json:"currentPage"`
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, location string, page int) (RecommendationPage, error)
}

type Recommendation struct {
	users    user.Repository
	searcher jobsearch.Searcher
	cache    SearchCache
	logger   *log.Logger
	now      func() time.Time
}

func NewRecommendationUsecase(users user.Repository, searcher jobsearch.Searcher, cache SearchCache, logger *log.Logger) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{users: users, searcher: searcher, cache: cache, logger: logger, now: time.Now}
}

func (u *Recommendation) Recommend(ctx context.Context, userID uuid.UUID, location string, page int) (RecommendationPage, error) {
	if userID == uuid.Nil {
		return RecommendationPage{}, ErrUnauthorized
	}
	if page < 1 {
		page = 1
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return RecommendationPage{}, user.ErrNotFound
		}
		return RecommendationPage{}, ErrInternal
	}

	userSkills := usr.EffectiveSkills()
	if len(userSkills) == 0 {
		return RecommendationPage{}, ErrNoSkills
	}

	if location == "" {
		location = usr.Preferences.DefaultLocation
	}

	cacheKey := JobsRecommendationCacheKey(userSkills, location, page)
	if u.cache != nil {
		var cached RecommendationPage
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	res := u.searcher.Search(ctx, userSkills, location, page, recommendationResultsPerPage)

	now := u.now()
	scored := make([]job.ScoredPosting, 0, len(res.Results))
	for _, raw := range res.Results {
		posting := jobsearch.Normalize(raw, now)
		match := skills.Match(posting.Description, userSkills)
		scored = append(scored, job.ScoredPosting{
			Posting:         posting,
			MatchPercentage: match.Percentage,
			MatchingSkills:  match.MatchedSkills,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchPercentage > scored[j].MatchPercentage
	})

	out := RecommendationPage{
		Recommendations: scored,
		Count:           len(scored),
		TotalResults:    res.Count,
		TotalPages:      totalPages(res.Count, res.ResultsPerPage),
		CurrentPage:     page,
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL); err != nil {
			u.logger.Printf("[Recommendation] cache set failed: %v", err)
		}
	}
	return out, nil
}

func totalPages(totalResults, resultsPerPage int) int {
	if resultsPerPage <= 0 {
		return 1
	}
	pages := int(math.Ceil(float64(totalResults) / float64(resultsPerPage)))
	if pages < 1 {
		pages = 1
	}
	return pages
}

var _ RecommendationUsecase = (*Recommendation)(nil)
