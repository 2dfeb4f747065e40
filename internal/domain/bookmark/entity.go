package bookmark

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("saved job not found")

// Bookmark is a user's saved reference to an external job posting, unique
// per (UserID, JobID).
type Bookmark struct {
	ID          uuid.UUID
	UserID      uuid.UUID
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
	SavedAt     time.Time
}

type Repository interface {
	// Save persists b unless the (UserID, JobID) pair already exists, in
	// which case the existing row is returned and created is false.
	Save(ctx context.Context, b Bookmark) (saved Bookmark, created bool, err error)
	GetByUserAndJob(ctx context.Context, userID uuid.UUID, jobID string) (Bookmark, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Bookmark, error)
	Delete(ctx context.Context, userID uuid.UUID, jobID string) error
}
