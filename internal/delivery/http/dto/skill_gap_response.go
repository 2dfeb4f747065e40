package dto

import "jobpilot/internal/usecase"

// SkillGapResponse wraps the gap report in the shape the frontend consumes.
type SkillGapResponse struct {
	Success bool                   `json:"success"`
	Data    usecase.SkillGapReport `json:"data"`
}

func FromSkillGapReport(r usecase.SkillGapReport) SkillGapResponse {
	if r.UserSkills == nil {
		r.UserSkills = []string{}
	}
	if r.RequiredSkills == nil {
		r.RequiredSkills = []string{}
	}
	if r.MatchedSkills == nil {
		r.MatchedSkills = []string{}
	}
	if r.MissingSkills == nil {
		r.MissingSkills = []string{}
	}
	return SkillGapResponse{Success: true, Data: r}
}
