package jobsearch

// RawPosting is the external provider's posting shape. JSearch-style field
// names come first; the generic aliases (id, title, ...) appear in some
// provider responses and in mock payloads, and feed the normalization
// fallback chain.
type RawPosting struct {
	JobID             string   `json:"job_id"`
	ID                string   `json:"id"`
	JobTitle          string   `json:"job_title"`
	Title             string   `json:"title"`
	EmployerName      string   `json:"employer_name"`
	Company           string   `json:"company"`
	EmployerLogo      string   `json:"employer_logo"`
	JobPublisher      string   `json:"job_publisher"`
	JobEmploymentType string   `json:"job_employment_type"`
	Type              string   `json:"type"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobDescription    string   `json:"job_description"`
	Description       string   `json:"description"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	SalaryMin         *float64 `json:"salary_min"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	SalaryMax         *float64 `json:"salary_max"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	Created           string   `json:"created"`
	JobApplyLink      string   `json:"job_apply_link"`
	RedirectURL       string   `json:"redirect_url"`
	JobIsRemote       bool     `json:"job_is_remote"`
}

// Page is one page of search results in the provider's envelope.
type Page struct {
	Count          int          `json:"count"`
	Results        []RawPosting `json:"results"`
	ResultsPerPage int          `json:"results_per_page"`
}
