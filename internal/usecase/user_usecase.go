package usecase

import (
	"context"
	"errors"
	"strings"

	"jobpilot/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UpdateProfileInput struct {
	Name  *string
	Email *string
}

type UpdatePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

type UpdatePreferencesInput struct {
	DefaultLocation *string
	Salary          *user.SalaryRange
	JobTypes        []string
	Notifications   *user.Notifications
	ManualSkills    []string
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, in UpdatePasswordInput) error
	UpdatePreferences(ctx context.Context, userID uuid.UUID, in UpdatePreferencesInput) (user.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if in.Name == nil && in.Email == nil {
		return user.User{}, ErrInvalidInput
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return user.User{}, ErrInvalidInput
		}
		if email != usr.Email {
			taken, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return user.User{}, ErrInternal
			}
			if taken {
				return user.User{}, ErrEmailAlreadyRegistered
			}
		}
		usr.Email = email
	}

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, in UpdatePasswordInput) error {
	if in.CurrentPassword == "" || !isValidPassword(in.NewPassword) {
		return ErrInvalidInput
	}

	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}
	usr.PasswordHash = string(hash)

	if err := s.users.Update(ctx, usr); err != nil {
		return ErrInternal
	}
	return nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, userID uuid.UUID, in UpdatePreferencesInput) (user.User, error) {
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.DefaultLocation != nil {
		usr.Preferences.DefaultLocation = strings.TrimSpace(*in.DefaultLocation)
	}
	if in.Salary != nil {
		usr.Preferences.Salary = *in.Salary
	}
	if in.JobTypes != nil {
		usr.Preferences.JobTypes = in.JobTypes
	}
	if in.Notifications != nil {
		usr.Preferences.Notifications = *in.Notifications
	}
	if in.ManualSkills != nil {
		usr.ManualSkills = in.ManualSkills
	}

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

var _ UserUsecase = (*UserService)(nil)
