package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobpilot/internal/domain/bookmark"

	"github.com/google/uuid"
)

// SaveJobInput carries the posting snapshot a user saves. JobID, Title and
// Company are required; the rest is kept verbatim for later display and
// skill-gap analysis.
type SaveJobInput struct {
	JobID       string
	Title       string
	Company     string
	Location    string
	Salary      string
	Link        string
	Description string
	Skills      []string
	DatePosted  string
	JobType     string
	MatchScore  int
}

// SaveJobResult reports whether the save created a new row. AlreadySaved is
// true when the (user, job) pair existed; the call is idempotent either way.
type SaveJobResult struct {
	Bookmark     bookmark.Bookmark
	AlreadySaved bool
}

type BookmarkUsecase interface {
	SaveJob(ctx context.Context, userID uuid.UUID, in SaveJobInput) (SaveJobResult, error)
	Unsave(ctx context.Context, userID uuid.UUID, jobID string) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]bookmark.Bookmark, error)
	GetSaved(ctx context.Context, userID uuid.UUID, jobID string) (bookmark.Bookmark, error)
}

type Bookmarks struct {
	repo bookmark.Repository
	now  func() time.Time
}

func NewBookmarkUsecase(repo bookmark.Repository) *Bookmarks {
	return &Bookmarks{repo: repo, now: time.Now}
}

func (u *Bookmarks) SaveJob(ctx context.Context, userID uuid.UUID, in SaveJobInput) (SaveJobResult, error) {
	if userID == uuid.Nil {
		return SaveJobResult{}, ErrUnauthorized
	}

	jobID := strings.TrimSpace(in.JobID)
	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	if jobID == "" || title == "" || company == "" {
		return SaveJobResult{}, ErrInvalidInput
	}

	score := in.MatchScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	b := bookmark.Bookmark{
		ID:          uuid.New(),
		UserID:      userID,
		JobID:       jobID,
		Title:       title,
		Company:     company,
		Location:    strings.TrimSpace(in.Location),
		Salary:      strings.TrimSpace(in.Salary),
		Link:        strings.TrimSpace(in.Link),
		Description: in.Description,
		Skills:      in.Skills,
		DatePosted:  in.DatePosted,
		JobType:     in.JobType,
		MatchScore:  score,
		SavedAt:     u.now().UTC(),
	}

	saved, created, err := u.repo.Save(ctx, b)
	if err != nil {
		return SaveJobResult{}, ErrInternal
	}
	return SaveJobResult{Bookmark: saved, AlreadySaved: !created}, nil
}

func (u *Bookmarks) Unsave(ctx context.Context, userID uuid.UUID, jobID string) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ErrInvalidInput
	}

	err := u.repo.Delete(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			return bookmark.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Bookmarks) ListSaved(ctx context.Context, userID uuid.UUID) ([]bookmark.Bookmark, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	list, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if list == nil {
		list = []bookmark.Bookmark{}
	}
	return list, nil
}

func (u *Bookmarks) GetSaved(ctx context.Context, userID uuid.UUID, jobID string) (bookmark.Bookmark, error) {
	if userID == uuid.Nil {
		return bookmark.Bookmark{}, ErrUnauthorized
	}
	b, err := u.repo.GetByUserAndJob(ctx, userID, strings.TrimSpace(jobID))
	if err != nil {
		if errors.Is(err, bookmark.ErrNotFound) {
			return bookmark.Bookmark{}, bookmark.ErrNotFound
		}
		return bookmark.Bookmark{}, ErrInternal
	}
	return b, nil
}

var _ BookmarkUsecase = (*Bookmarks)(nil)
