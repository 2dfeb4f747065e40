package job

// Salary is a posting's advertised range. Zero min/max means the posting did
// not disclose one; Currency always carries a value.
type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

// Posting is the canonical job record produced by normalizing an external
// search result. Every field carries a non-empty fallback so consumers never
// branch on absence.
type Posting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      Salary `json:"salary"`
	Type        string `json:"type"`
	DatePosted  string `json:"datePosted"`
	URL         string `json:"url"`
	IsRemote    bool   `json:"isRemote"`
	Publisher   string `json:"publisher"`
}

// ScoredPosting is a Posting with its skill-match score against one user.
type ScoredPosting struct {
	Posting
	MatchPercentage int      `json:"matchPercentage"`
	MatchingSkills  []string `json:"matchingSkills"`
}

// Fallbacks used during normalization.
const (
	FallbackTitle     = "Job Title Not Available"
	FallbackCompany   = "Company Not Specified"
	FallbackCountry   = "India"
	FallbackCurrency  = "INR"
	FallbackType      = "Full-time"
	FallbackPublisher = "Not Specified"
)
