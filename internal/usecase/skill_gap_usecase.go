package usecase

import (
	"context"
	"errors"
	"strings"

	"jobpilot/internal/domain/bookmark"
	"jobpilot/internal/domain/skills"
	"jobpilot/internal/domain/user"

	"github.com/google/uuid"
)

// SkillGapJob is the summary of the saved posting a gap report refers to.
type SkillGapJob struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// SkillGapReport compares a user's skill set against a saved job's
// description.
type SkillGapReport struct {
	Job             SkillGapJob `json:"job"`
	UserSkills      []string    `json:"userSkills"`
	RequiredSkills  []string    `json:"requiredSkills"`
	MatchedSkills   []string    `json:"matchedSkills"`
	MissingSkills   []string    `json:"missingSkills"`
	MatchPercentage int         `json:"matchPercentage"`
}

type SkillGapUsecase interface {
	AnalyzeGap(ctx context.Context, userID uuid.UUID, jobID string) (SkillGapReport, error)
}

type SkillGap struct {
	users     user.Repository
	bookmarks bookmark.Repository
	extractor *skills.Extractor
}

func NewSkillGapUsecase(users user.Repository, bookmarks bookmark.Repository, extractor *skills.Extractor) *SkillGap {
	return &SkillGap{users: users, bookmarks: bookmarks, extractor: extractor}
}

func (u *SkillGap) AnalyzeGap(ctx context.Context, userID uuid.UUID, jobID string) (SkillGapReport, error) {
	if userID == uuid.Nil {
		return SkillGapReport{}, ErrUnauthorized
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return SkillGapReport{}, ErrInvalidInput
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return SkillGapReport{}, user.ErrNotFound
		}
		return SkillGapReport{}, ErrInternal
	}

	userSkills := usr.EffectiveSkills()
	if len(userSkills) == 0 {
		return SkillGapReport{}, ErrNoSkills
	}

	saved, err := u.bookmarks.GetByUserAndJob(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			return SkillGapReport{}, bookmark.ErrNotFound
		}
		return SkillGapReport{}, ErrInternal
	}

	report := u.extractor.AnalyzeGap(saved.Description, userSkills)

	lowered := make([]string, len(userSkills))
	for i, s := range userSkills {
		lowered[i] = strings.ToLower(s)
	}

	return SkillGapReport{
		Job: SkillGapJob{
			ID:          saved.JobID,
			Title:       saved.Title,
			Company:     saved.Company,
			Description: saved.Description,
		},
		UserSkills:      lowered,
		RequiredSkills:  report.RequiredSkills,
		MatchedSkills:   report.MatchedSkills,
		MissingSkills:   report.MissingSkills,
		MatchPercentage: report.MatchPercentage,
	}, nil
}

var _ SkillGapUsecase = (*SkillGap)(nil)
