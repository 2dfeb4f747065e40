package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobpilot/internal/domain/user"
	"jobpilot/internal/infrastructure/resumeparser"

	"github.com/google/uuid"
)

// ErrParserUnavailable means no résumé parser service is configured or the
// configured one failed.
var ErrParserUnavailable = errors.New("resume parser unavailable")

type ResumeUsecase interface {
	SaveParsedResume(ctx context.Context, userID uuid.UUID, parsed user.ParsedResume) error
	MarkUploaded(ctx context.Context, userID uuid.UUID, resumeURL string) (user.User, error)
	ViewResume(ctx context.Context, resumeURL string) (string, error)
}

type Resume struct {
	users  user.Repository
	parser resumeparser.Client
	now    func() time.Time
}

func NewResumeUsecase(users user.Repository, parser resumeparser.Client) *Resume {
	return &Resume{users: users, parser: parser, now: time.Now}
}

func (s *Resume) SaveParsedResume(ctx context.Context, userID uuid.UUID, parsed user.ParsedResume) error {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}

	parsedAt := s.now().UTC()
	usr.ParsedResume = &parsed
	usr.ResumeParsedAt = &parsedAt

	if err := s.users.Update(ctx, usr); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *Resume) MarkUploaded(ctx context.Context, userID uuid.UUID, resumeURL string) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	usr.ResumeUploaded = true
	if url := strings.TrimSpace(resumeURL); url != "" {
		usr.ResumeURL = url
	}

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Resume) ViewResume(ctx context.Context, resumeURL string) (string, error) {
	if strings.TrimSpace(resumeURL) == "" {
		return "", ErrInvalidInput
	}
	if s.parser == nil {
		return "", ErrParserUnavailable
	}

	text, err := s.parser.ExtractText(ctx, resumeURL)
	if err != nil {
		return "", ErrParserUnavailable
	}
	return text, nil
}

var _ ResumeUsecase = (*Resume)(nil)
