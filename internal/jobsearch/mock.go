package jobsearch

import (
	"strings"
	"time"
)

func f64(v float64) *float64 { return &v }

// mockPostings is the fixed fallback set returned whenever the external API
// cannot be reached. Descriptions intentionally carry common stack terms so
// downstream skill matching still produces meaningful scores.
func mockPostings(now time.Time) []RawPosting {
	posted := now.UTC().Format(time.RFC3339)
	return []RawPosting{
		{
			JobID:             "mock1",
			JobTitle:          "Frontend Developer",
			EmployerName:      "Tech Solutions",
			EmployerLogo:      "https://example.com/logo1.png",
			JobPublisher:      "LinkedIn",
			JobEmploymentType: "FULLTIME",
			JobCity:           "Bangalore",
			JobState:          "Karnataka",
			JobCountry:        "India",
			JobDescription:    "Looking for a developer with React, JavaScript, and HTML/CSS skills to join our team. You'll be building modern web applications and user interfaces.",
			JobMinSalary:      f64(1200000),
			JobMaxSalary:      f64(2000000),
			JobPostedAt:       posted,
			JobApplyLink:      "https://example.com/job1",
		},
		{
			JobID:             "mock2",
			JobTitle:          "Full Stack Developer",
			EmployerName:      "WebTech India",
			EmployerLogo:      "https://example.com/logo2.png",
			JobPublisher:      "Naukri",
			JobEmploymentType: "FULLTIME",
			JobCity:           "Mumbai",
			JobState:          "Maharashtra",
			JobCountry:        "India",
			JobDescription:    "We're looking for a Full Stack Developer with Node.js, Express, MongoDB, and React experience. Must have good understanding of frontend and backend technologies.",
			JobMinSalary:      f64(1500000),
			JobMaxSalary:      f64(2500000),
			JobPostedAt:       posted,
			JobApplyLink:      "https://example.com/job2",
		},
		{
			JobID:             "mock3",
			JobTitle:          "Python Developer",
			EmployerName:      "AI Solutions",
			EmployerLogo:      "https://example.com/logo3.png",
			JobPublisher:      "Indeed",
			JobEmploymentType: "FULLTIME",
			JobCity:           "Delhi",
			JobState:          "Delhi",
			JobCountry:        "India",
			JobDescription:    "Python developer needed for our AI team. Experience with Python, machine learning libraries, and good communication skills required.",
			JobMinSalary:      f64(1600000),
			JobMaxSalary:      f64(2600000),
			JobPostedAt:       posted,
			JobApplyLink:      "https://example.com/job3",
		},
		{
			JobID:             "mock4",
			JobTitle:          "MERN Stack Developer",
			EmployerName:      "Digital Innovators",
			EmployerLogo:      "https://example.com/logo4.png",
			JobPublisher:      "LinkedIn",
			JobEmploymentType: "FULLTIME",
			JobCity:           "Hyderabad",
			JobState:          "Telangana",
			JobCountry:        "India",
			JobDescription:    "Experienced MERN stack developer needed. Must know MongoDB, Express, React and Node.js. Will be working on developing and maintaining modern web applications.",
			JobMinSalary:      f64(1700000),
			JobMaxSalary:      f64(2700000),
			JobPostedAt:       posted,
			JobApplyLink:      "https://example.com/job4",
		},
	}
}

// MockPage builds the fallback result page, filtered by city/state substring
// when location is non-empty. results_per_page tracks the filtered count.
func MockPage(location string, now time.Time) Page {
	all := mockPostings(now)

	filtered := all
	if loc := strings.ToLower(strings.TrimSpace(location)); loc != "" {
		filtered = make([]RawPosting, 0, len(all))
		for _, p := range all {
			if strings.Contains(strings.ToLower(p.JobCity), loc) ||
				strings.Contains(strings.ToLower(p.JobState), loc) {
				filtered = append(filtered, p)
			}
		}
	}

	return Page{
		Count:          len(filtered),
		Results:        filtered,
		ResultsPerPage: len(filtered),
	}
}
