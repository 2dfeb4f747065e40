package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobpilot/internal/database"
	"jobpilot/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, resume_url, resume_uploaded,
	parsed_resume, resume_parsed_at, preferences, manual_skills, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return err
	}
	manual, err := json.Marshal(sliceOrEmpty(u.ManualSkills))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, preferences, manual_skills)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Name, u.Email, u.PasswordHash, prefs, manual,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	var parsed []byte
	if u.ParsedResume != nil {
		b, err := json.Marshal(u.ParsedResume)
		if err != nil {
			return err
		}
		parsed = b
	}
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return err
	}
	manual, err := json.Marshal(sliceOrEmpty(u.ManualSkills))
	if err != nil {
		return err
	}

	rowsAffected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, password_hash = $3, resume_url = $4,
		     resume_uploaded = $5, parsed_resume = $6, resume_parsed_at = $7,
		     preferences = $8, manual_skills = $9, updated_at = now()
		 WHERE id = $10`,
		u.Name, u.Email, u.PasswordHash, u.ResumeURL,
		u.ResumeUploaded, parsed, u.ResumeParsedAt,
		prefs, manual, u.ID,
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rowsAffected, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var (
		u      user.User
		parsed []byte
		prefs  []byte
		manual []byte
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.ResumeURL, &u.ResumeUploaded,
		&parsed, &u.ResumeParsedAt, &prefs, &manual, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	if len(parsed) > 0 {
		var pr user.ParsedResume
		if err := json.Unmarshal(parsed, &pr); err != nil {
			return user.User{}, err
		}
		u.ParsedResume = &pr
	}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &u.Preferences); err != nil {
			return user.User{}, err
		}
	}
	if len(manual) > 0 {
		if err := json.Unmarshal(manual, &u.ManualSkills); err != nil {
			return user.User{}, err
		}
	}
	return u, nil
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ user.Repository = (*PostgresUserRepository)(nil)
