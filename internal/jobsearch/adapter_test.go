package jobsearch

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobpilot/internal/domain/job"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestAdapter_MissingAPIKeyFallsBackToMock(t *testing.T) {
	a := NewAdapter(NewClient(Config{}), testLogger())

	page := a.Search(context.Background(), []string{"React"}, "", 1, 10)
	if page.Count != 4 || len(page.Results) != 4 {
		t.Fatalf("expected 4 mock postings, got count=%d len=%d", page.Count, len(page.Results))
	}
	if page.ResultsPerPage != 4 {
		t.Fatalf("expected results_per_page 4, got %d", page.ResultsPerPage)
	}
}

func TestAdapter_TransportFailureFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := NewAdapter(NewClient(Config{BaseURL: srv.URL, APIKey: "k"}), testLogger())
	page := a.Search(context.Background(), []string{"React"}, "", 1, 10)
	if page.Count != 4 {
		t.Fatalf("expected mock fallback, got count=%d", page.Count)
	}
}

func TestAdapter_Non2xxFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(Config{BaseURL: srv.URL, APIKey: "k"}), testLogger())
	page := a.Search(context.Background(), []string{"React"}, "", 1, 10)
	if page.Count != 4 {
		t.Fatalf("expected mock fallback, got count=%d", page.Count)
	}
}

func TestAdapter_MalformedBodyFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(Config{BaseURL: srv.URL, APIKey: "k"}), testLogger())
	page := a.Search(context.Background(), []string{"React"}, "", 1, 10)
	if page.Count != 4 {
		t.Fatalf("expected mock fallback, got count=%d", page.Count)
	}
}

func TestAdapter_SuccessPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-RapidAPI-Key") != "k" {
			t.Errorf("missing api key header")
		}
		if got := r.URL.Query().Get("query"); got == "" {
			t.Errorf("missing query param")
		}
		_, _ = w.Write([]byte(`{"data":[{"job_id":"j1","job_title":"Go Engineer","employer_name":"Acme"}]}`))
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(Config{BaseURL: srv.URL, APIKey: "k"}), testLogger())
	page := a.Search(context.Background(), []string{"Golang"}, "", 1, 10)
	if page.Count != 1 || len(page.Results) != 1 {
		t.Fatalf("expected 1 result, got count=%d len=%d", page.Count, len(page.Results))
	}
	if page.Results[0].JobID != "j1" {
		t.Fatalf("unexpected result: %+v", page.Results[0])
	}
	if page.ResultsPerPage != 10 {
		t.Fatalf("expected results_per_page 10, got %d", page.ResultsPerPage)
	}
}

func TestMockPage_LocationFilter(t *testing.T) {
	now := time.Now()

	page := MockPage("mumbai", now)
	if page.Count != 1 {
		t.Fatalf("expected 1 posting for mumbai, got %d", page.Count)
	}
	if page.Results[0].JobCity != "Mumbai" {
		t.Fatalf("unexpected posting: %+v", page.Results[0])
	}
	if page.ResultsPerPage != 1 {
		t.Fatalf("expected results_per_page 1, got %d", page.ResultsPerPage)
	}

	// State names match too.
	page = MockPage("Karnataka", now)
	if page.Count != 1 || page.Results[0].JobCity != "Bangalore" {
		t.Fatalf("expected Bangalore posting for Karnataka, got %+v", page.Results)
	}

	// Unknown location filters everything out.
	page = MockPage("Atlantis", now)
	if page.Count != 0 || page.ResultsPerPage != 0 {
		t.Fatalf("expected empty page, got %+v", page)
	}
}

func TestNormalize_FallbackChain(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := Normalize(RawPosting{}, now)
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if p.Title != job.FallbackTitle {
		t.Fatalf("expected title fallback, got %q", p.Title)
	}
	if p.Company != job.FallbackCompany {
		t.Fatalf("expected company fallback, got %q", p.Company)
	}
	if p.Location != job.FallbackCountry {
		t.Fatalf("expected country-only location, got %q", p.Location)
	}
	if p.Salary.Currency != job.FallbackCurrency {
		t.Fatalf("expected INR, got %q", p.Salary.Currency)
	}
	if p.Type != job.FallbackType {
		t.Fatalf("expected type fallback, got %q", p.Type)
	}
	if p.Publisher != job.FallbackPublisher {
		t.Fatalf("expected publisher fallback, got %q", p.Publisher)
	}
	if p.DatePosted != "2026-03-01T12:00:00Z" {
		t.Fatalf("unexpected datePosted %q", p.DatePosted)
	}
}

func TestNormalize_ProviderFieldsPreferred(t *testing.T) {
	now := time.Now()
	p := Normalize(RawPosting{
		JobID:          "j1",
		ID:             "generic",
		JobTitle:       "Backend Engineer",
		Title:          "other",
		EmployerName:   "Acme",
		JobCity:        "Pune",
		JobState:       "Maharashtra",
		JobCountry:     "India",
		JobDescription: "Go and PostgreSQL",
		JobMinSalary:   f64(100),
		JobMaxSalary:   f64(200),
		JobIsRemote:    true,
	}, now)

	if p.ID != "j1" || p.Title != "Backend Engineer" || p.Company != "Acme" {
		t.Fatalf("provider fields not preferred: %+v", p)
	}
	if p.Location != "Pune Maharashtra India" {
		t.Fatalf("unexpected location %q", p.Location)
	}
	if p.Salary.Min != 100 || p.Salary.Max != 200 {
		t.Fatalf("unexpected salary %+v", p.Salary)
	}
	if !p.IsRemote {
		t.Fatalf("expected remote flag")
	}
}
