package jobsearch

import (
	"context"
	"log"
	"strings"
	"time"

	"jobpilot/internal/domain/job"

	"github.com/google/uuid"
)

// Searcher is the adapter surface the recommendation pipeline depends on.
type Searcher interface {
	Search(ctx context.Context, skills []string, location string, page, resultsPerPage int) Page
}

// Adapter builds the provider query, calls the external API, and collapses
// every failure to the deterministic mock page. It never returns an error:
// degraded results are the contract.
type Adapter struct {
	client *Client
	logger *log.Logger
	now    func() time.Time
}

func NewAdapter(client *Client, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.Default()
	}
	return &Adapter{client: client, logger: logger, now: time.Now}
}

func (a *Adapter) Search(ctx context.Context, skills []string, location string, page, resultsPerPage int) Page {
	if resultsPerPage <= 0 {
		resultsPerPage = 10
	}

	if !a.client.Configured() {
		a.logger.Printf("[JobSearch] API key missing, using mock data")
		return MockPage(location, a.now())
	}

	query := BuildQuery(skills, location)
	a.logger.Printf("[JobSearch] query=%q page=%d", query, page)

	res, err := a.client.Search(ctx, query, page)
	if err != nil {
		a.logger.Printf("[JobSearch] external API failed, using mock data: %v", err)
		return MockPage(location, a.now())
	}

	res.ResultsPerPage = resultsPerPage
	return res
}

// Normalize maps a raw provider posting into the canonical Posting, applying
// the per-field fallback chain (provider field, generic field, fixed
// default).
func Normalize(raw RawPosting, now time.Time) job.Posting {
	id := firstNonEmpty(raw.JobID, raw.ID)
	if id == "" {
		id = "mock-" + uuid.NewString()[:8]
	}

	country := raw.JobCountry
	if country == "" {
		country = job.FallbackCountry
	}
	location := strings.TrimSpace(strings.Join(fieldsOf(raw.JobCity, raw.JobState, country), " "))

	return job.Posting{
		ID:          id,
		Title:       firstNonEmpty(raw.JobTitle, raw.Title, job.FallbackTitle),
		Company:     firstNonEmpty(raw.EmployerName, raw.Company, job.FallbackCompany),
		Location:    location,
		Description: firstNonEmpty(raw.JobDescription, raw.Description),
		Salary: job.Salary{
			Min:      firstSalary(raw.JobMinSalary, raw.SalaryMin),
			Max:      firstSalary(raw.JobMaxSalary, raw.SalaryMax),
			Currency: job.FallbackCurrency,
		},
		Type:       firstNonEmpty(raw.JobEmploymentType, raw.Type, job.FallbackType),
		DatePosted: firstNonEmpty(raw.JobPostedAt, raw.Created, now.UTC().Format(time.RFC3339)),
		URL:        firstNonEmpty(raw.JobApplyLink, raw.RedirectURL),
		IsRemote:   raw.JobIsRemote,
		Publisher:  firstNonEmpty(raw.JobPublisher, job.FallbackPublisher),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstSalary(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func fieldsOf(vals ...string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}

var _ Searcher = (*Adapter)(nil)
