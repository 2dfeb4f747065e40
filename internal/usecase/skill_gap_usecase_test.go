package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"jobpilot/internal/domain/bookmark"
	"jobpilot/internal/domain/skills"
	"jobpilot/internal/domain/user"

	"github.com/google/uuid"
)

func newGapUsecase(users mockUserRepo, repo bookmark.Repository) *SkillGap {
	return NewSkillGapUsecase(users, repo, skills.NewExtractor(skills.DefaultVocabulary()))
}

func TestAnalyzeGap_NoSkills(t *testing.T) {
	id := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{id: testUserWithSkills(id)}}
	uc := newGapUsecase(users, newFakeBookmarkRepo())

	_, err := uc.AnalyzeGap(context.Background(), id, "job-1")
	if !errors.Is(err, ErrNoSkills) {
		t.Fatalf("expected ErrNoSkills, got %v", err)
	}
}

func TestAnalyzeGap_JobNotSaved(t *testing.T) {
	id := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{id: testUserWithSkills(id, "React")}}
	uc := newGapUsecase(users, newFakeBookmarkRepo())

	_, err := uc.AnalyzeGap(context.Background(), id, "job-1")
	if !errors.Is(err, bookmark.ErrNotFound) {
		t.Fatalf("expected bookmark.ErrNotFound, got %v", err)
	}
}

func TestAnalyzeGap_EmptyJobID(t *testing.T) {
	id := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{id: testUserWithSkills(id, "React")}}
	uc := newGapUsecase(users, newFakeBookmarkRepo())

	_, err := uc.AnalyzeGap(context.Background(), id, "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeGap_Report(t *testing.T) {
	id := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{id: testUserWithSkills(id, "React")}}
	repo := newFakeBookmarkRepo()
	repo.byKey[bookmarkKey(id, "job-1")] = bookmark.Bookmark{
		UserID:      id,
		JobID:       "job-1",
		Title:       "Frontend Developer",
		Company:     "Acme",
		Description: "Must know React and Docker",
	}

	uc := newGapUsecase(users, repo)
	report, err := uc.AnalyzeGap(context.Background(), id, "job-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if report.Job.ID != "job-1" || report.Job.Title != "Frontend Developer" || report.Job.Company != "Acme" {
		t.Fatalf("unexpected job summary: %+v", report.Job)
	}
	if !reflect.DeepEqual(report.UserSkills, []string{"react"}) {
		t.Fatalf("user skills = %v, want lowercased [react]", report.UserSkills)
	}
	if !reflect.DeepEqual(report.RequiredSkills, []string{"react", "docker"}) {
		t.Fatalf("required = %v", report.RequiredSkills)
	}
	if !reflect.DeepEqual(report.MatchedSkills, []string{"react"}) {
		t.Fatalf("matched = %v", report.MatchedSkills)
	}
	if !reflect.DeepEqual(report.MissingSkills, []string{"docker"}) {
		t.Fatalf("missing = %v", report.MissingSkills)
	}
	if report.MatchPercentage != 50 {
		t.Fatalf("match = %d, want 50", report.MatchPercentage)
	}
}

func TestAnalyzeGap_NoRequiredSkills(t *testing.T) {
	id := uuid.New()
	users := mockUserRepo{users: map[uuid.UUID]user.User{id: testUserWithSkills(id, "React")}}
	repo := newFakeBookmarkRepo()
	repo.byKey[bookmarkKey(id, "job-2")] = bookmark.Bookmark{
		UserID:      id,
		JobID:       "job-2",
		Title:       "Barista",
		Company:     "Cafe",
		Description: "Friendly person wanted for weekend shifts.",
	}

	uc := newGapUsecase(users, repo)
	report, err := uc.AnalyzeGap(context.Background(), id, "job-2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.MatchPercentage != 0 {
		t.Fatalf("match = %d, want 0", report.MatchPercentage)
	}
	if len(report.RequiredSkills) != 0 || len(report.MissingSkills) != 0 {
		t.Fatalf("expected empty skill lists, got %+v", report)
	}
}
