package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobpilot/internal/domain/user"
	"jobpilot/internal/pkg/jwt"

	"github.com/google/uuid"
)

type memoryUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *memoryUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryUserRepo) Update(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memoryUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	u, ok := m.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	delete(m.byEmail, u.Email)
	delete(m.byID, id)
	return nil
}

func newAuthUsecase() (*Auth, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthUsecase(repo, jwtSvc), repo
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newAuthUsecase()

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"empty name", RegisterInput{Name: "  ", Email: "a@b.com", Password: "password1"}},
		{"bad email", RegisterInput{Name: "Dev", Email: "not-an-email", Password: "password1"}},
		{"short password", RegisterInput{Name: "Dev", Email: "a@b.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, _, err := uc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestRegister_Success(t *testing.T) {
	uc, repo := newAuthUsecase()

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Dev",
		Email:    "Dev@Example.COM",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "dev@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected token pair")
	}

	stored := repo.byEmail["dev@example.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "password1" {
		t.Fatalf("stored password must be hashed")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newAuthUsecase()
	in := RegisterInput{Name: "Dev", Email: "a@b.com", Password: "password1"}

	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthUsecase()
	if _, _, _, err := uc.Register(context.Background(), RegisterInput{Name: "Dev", Email: "a@b.com", Password: "password1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuthUsecase()
	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "nobody@b.com", Password: "password1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	uc, _ := newAuthUsecase()
	if _, _, _, err := uc.Register(context.Background(), RegisterInput{Name: "Dev", Email: "a@b.com", Password: "password1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	usr, access, refresh, err := uc.Login(context.Background(), LoginInput{Email: "A@B.com", Password: "password1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "a@b.com" || access == "" || refresh == "" {
		t.Fatalf("unexpected login result: %+v", usr)
	}
}

func TestRefresh_RoundTrip(t *testing.T) {
	uc, _ := newAuthUsecase()
	_, access, refresh, err := uc.Register(context.Background(), RegisterInput{Name: "Dev", Email: "a@b.com", Password: "password1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("expected fresh token pair")
	}

	// An access token is not accepted for refresh.
	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), "garbage"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
