package dto

import (
	"jobpilot/internal/domain/job"
	"jobpilot/internal/usecase"
)

// RecommendationsResponse is the exact top-level shape the frontend consumes
// for job recommendations. It deliberately bypasses the shared envelope.
type RecommendationsResponse struct {
	Success         bool                `json:"success"`
	Count           int                 `json:"count"`
	TotalResults    int                 `json:"totalResults"`
	TotalPages      int                 `json:"totalPages"`
	CurrentPage     int                 `json:"currentPage"`
	Recommendations []job.ScoredPosting `json:"recommendations"`
}

func FromRecommendationPage(p usecase.RecommendationPage) RecommendationsResponse {
	recs := p.Recommendations
	if recs == nil {
		recs = []job.ScoredPosting{}
	}
	return RecommendationsResponse{
		Success:         true,
		Count:           p.Count,
		TotalResults:    p.TotalResults,
		TotalPages:      p.TotalPages,
		CurrentPage:     p.CurrentPage,
		Recommendations: recs,
	}
}
