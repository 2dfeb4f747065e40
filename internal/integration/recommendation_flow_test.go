package integration

import (
	"context"
	"log"
	"os"
	"reflect"
	"testing"

	"jobpilot/internal/domain/bookmark"
	"jobpilot/internal/domain/skills"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/jobsearch"
	"jobpilot/internal/usecase"

	"github.com/google/uuid"
)

// In-memory repositories so the flow runs without Postgres.

type memUserRepo struct {
	users map[uuid.UUID]user.User
}

func (m *memUserRepo) Create(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}
func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}
func (m *memUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m *memUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m *memUserRepo) Update(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}
func (m *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

type memBookmarkRepo struct {
	rows map[string]bookmark.Bookmark
}

func key(userID uuid.UUID, jobID string) string { return userID.String() + "/" + jobID }

func (m *memBookmarkRepo) Save(_ context.Context, b bookmark.Bookmark) (bookmark.Bookmark, bool, error) {
	k := key(b.UserID, b.JobID)
	if existing, ok := m.rows[k]; ok {
		return existing, false, nil
	}
	m.rows[k] = b
	return b, true, nil
}
func (m *memBookmarkRepo) GetByUserAndJob(_ context.Context, userID uuid.UUID, jobID string) (bookmark.Bookmark, error) {
	b, ok := m.rows[key(userID, jobID)]
	if !ok {
		return bookmark.Bookmark{}, bookmark.ErrNotFound
	}
	return b, nil
}
func (m *memBookmarkRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]bookmark.Bookmark, error) {
	var out []bookmark.Bookmark
	for _, b := range m.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
func (m *memBookmarkRepo) Delete(_ context.Context, userID uuid.UUID, jobID string) error {
	k := key(userID, jobID)
	if _, ok := m.rows[k]; !ok {
		return bookmark.ErrNotFound
	}
	delete(m.rows, k)
	return nil
}

// TestRecommendationSaveGapFlow runs the full pipeline against the built-in
// mock postings: unconfigured API client, so the adapter serves the fixed
// page; the result is scored, the top hit saved, and the gap analyzed from
// the saved description.
func TestRecommendationSaveGapFlow(t *testing.T) {
	ctx := context.Background()
	logger := log.New(os.Stderr, "", 0)

	users := &memUserRepo{users: map[uuid.UUID]user.User{}}
	bookmarks := &memBookmarkRepo{rows: map[string]bookmark.Bookmark{}}

	userID := uuid.New()
	users.users[userID] = user.User{
		ID:           userID,
		Name:         "Dev",
		Email:        "dev@example.com",
		ManualSkills: []string{"React", "Node.js", "MongoDB"},
		Preferences:  user.DefaultPreferences(),
	}

	searcher := jobsearch.NewAdapter(jobsearch.NewClient(jobsearch.Config{}), logger)
	recommendUC := usecase.NewRecommendationUsecase(users, searcher, nil, logger)
	bookmarkUC := usecase.NewBookmarkUsecase(bookmarks)
	gapUC := usecase.NewSkillGapUsecase(users, bookmarks, skills.NewExtractor(skills.DefaultVocabulary()))

	// Step 1: recommendations for Mumbai hit exactly the one mock posting
	// located there.
	page, err := recommendUC.Recommend(ctx, userID, "Mumbai", 1)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if page.Count != 1 || page.TotalPages != 1 {
		t.Fatalf("expected one Mumbai posting, got %+v", page)
	}

	top := page.Recommendations[0]
	if top.ID != "mock2" {
		t.Fatalf("expected mock2, got %s", top.ID)
	}
	if top.MatchPercentage != 100 {
		t.Fatalf("all three skills appear in the description, got %d%%", top.MatchPercentage)
	}
	if top.Company != "WebTech India" || top.Salary.Currency != "INR" {
		t.Fatalf("normalization lost provider fields: %+v", top)
	}

	// Step 2: save the top recommendation; a repeat save is a no-op.
	in := usecase.SaveJobInput{
		JobID:       top.ID,
		Title:       top.Title,
		Company:     top.Company,
		Location:    top.Location,
		Link:        top.URL,
		Description: top.Description,
		Skills:      top.MatchingSkills,
		DatePosted:  top.DatePosted,
		JobType:     top.Type,
		MatchScore:  top.MatchPercentage,
	}
	first, err := bookmarkUC.SaveJob(ctx, userID, in)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.AlreadySaved {
		t.Fatalf("first save must create")
	}
	second, err := bookmarkUC.SaveJob(ctx, userID, in)
	if err != nil {
		t.Fatalf("repeat save: %v", err)
	}
	if !second.AlreadySaved || second.Bookmark.ID != first.Bookmark.ID {
		t.Fatalf("repeat save must return the existing bookmark")
	}

	// Step 3: gap analysis against the saved description. The posting also
	// asks for Express, which the user lacks.
	report, err := gapUC.AnalyzeGap(ctx, userID, top.ID)
	if err != nil {
		t.Fatalf("gap: %v", err)
	}
	if !reflect.DeepEqual(report.RequiredSkills, []string{"react", "node.js", "express", "mongodb"}) {
		t.Fatalf("required = %v", report.RequiredSkills)
	}
	if !reflect.DeepEqual(report.MissingSkills, []string{"express"}) {
		t.Fatalf("missing = %v", report.MissingSkills)
	}
	if report.MatchPercentage != 75 {
		t.Fatalf("match = %d, want 75", report.MatchPercentage)
	}
	if report.Job.ID != "mock2" || report.Job.Company != "WebTech India" {
		t.Fatalf("job summary = %+v", report.Job)
	}
}
