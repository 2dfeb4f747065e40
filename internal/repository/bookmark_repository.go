package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/bookmark"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresBookmarkRepository struct {
	db database.DB
}

func NewPostgresBookmarkRepository(db database.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

const bookmarkColumns = `id, user_id, job_id, title, company, location, salary,
	link, description, skills, date_posted, job_type, match_score, saved_at`

// Save inserts the bookmark unless the (user_id, job_id) pair exists. The
// ON CONFLICT DO NOTHING plus read-back makes a repeated save return the
// original row without error.
func (r *PostgresBookmarkRepository) Save(ctx context.Context, b bookmark.Bookmark) (bookmark.Bookmark, bool, error) {
	skills, err := json.Marshal(sliceOrEmpty(b.Skills))
	if err != nil {
		return bookmark.Bookmark{}, false, err
	}

	rowsAffected, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs
			(id, user_id, job_id, title, company, location, salary, link,
			 description, skills, date_posted, job_type, match_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (user_id, job_id) DO NOTHING`,
		b.ID, b.UserID, b.JobID, b.Title, b.Company, b.Location, b.Salary, b.Link,
		b.Description, skills, b.DatePosted, b.JobType, b.MatchScore,
	)
	if err != nil {
		return bookmark.Bookmark{}, false, err
	}

	saved, err := r.GetByUserAndJob(ctx, b.UserID, b.JobID)
	if err != nil {
		return bookmark.Bookmark{}, false, err
	}
	return saved, rowsAffected > 0, nil
}

func (r *PostgresBookmarkRepository) GetByUserAndJob(ctx context.Context, userID uuid.UUID, jobID string) (bookmark.Bookmark, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookmarkColumns+` FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	return scanBookmark(row)
}

func (r *PostgresBookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]bookmark.Bookmark, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookmarkColumns+` FROM saved_jobs WHERE user_id = $1 ORDER BY saved_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]bookmark.Bookmark, 0)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresBookmarkRepository) Delete(ctx context.Context, userID uuid.UUID, jobID string) error {
	rowsAffected, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return bookmark.ErrNotFound
	}
	return nil
}

func scanBookmark(row database.Row) (bookmark.Bookmark, error) {
	var (
		b      bookmark.Bookmark
		skills []byte
	)
	err := row.Scan(
		&b.ID, &b.UserID, &b.JobID, &b.Title, &b.Company, &b.Location, &b.Salary,
		&b.Link, &b.Description, &skills, &b.DatePosted, &b.JobType, &b.MatchScore, &b.SavedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return bookmark.Bookmark{}, bookmark.ErrNotFound
		}
		return bookmark.Bookmark{}, err
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &b.Skills); err != nil {
			return bookmark.Bookmark{}, err
		}
	}
	return b, nil
}

var _ bookmark.Repository = (*PostgresBookmarkRepository)(nil)
