package dto

import (
	"time"

	"jobpilot/internal/domain/bookmark"
)

type SavedJobResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	DatePosted  string    `json:"datePosted"`
	JobType     string    `json:"jobType"`
	MatchScore  int       `json:"matchScore"`
	SavedAt     time.Time `json:"savedAt"`
}

// SaveJobResponse is the shape returned by the save endpoint, both for fresh
// saves and for repeats on an already saved posting.
type SaveJobResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	SavedJob SavedJobResponse `json:"savedJob"`
}

type SavedJobsListResponse struct {
	Success   bool               `json:"success"`
	Count     int                `json:"count"`
	SavedJobs []SavedJobResponse `json:"savedJobs"`
}

func FromBookmark(b bookmark.Bookmark) SavedJobResponse {
	skills := b.Skills
	if skills == nil {
		skills = []string{}
	}
	return SavedJobResponse{
		ID:          b.ID.String(),
		JobID:       b.JobID,
		Title:       b.Title,
		Company:     b.Company,
		Location:    b.Location,
		Salary:      b.Salary,
		Link:        b.Link,
		Description: b.Description,
		Skills:      skills,
		DatePosted:  b.DatePosted,
		JobType:     b.JobType,
		MatchScore:  b.MatchScore,
		SavedAt:     b.SavedAt,
	}
}

func FromBookmarks(list []bookmark.Bookmark) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBookmark(b))
	}
	return out
}
