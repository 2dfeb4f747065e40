package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	ResumeURL      string
	ResumeUploaded bool
	ParsedResume   *ParsedResume
	ResumeParsedAt *time.Time
	Preferences    Preferences
	ManualSkills   []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ParsedResume is the structured payload the résumé parser produces. Only
// Skills is interpreted by this backend; the rest is stored and returned
// verbatim for the frontend.
type ParsedResume struct {
	Skills     []string         `json:"skills"`
	Experience []map[string]any `json:"experience,omitempty"`
	Education  []map[string]any `json:"education,omitempty"`
	Summary    string           `json:"summary,omitempty"`
}

type Preferences struct {
	DefaultLocation string        `json:"defaultLocation"`
	Salary          SalaryRange   `json:"salary"`
	JobTypes        []string      `json:"jobTypes"`
	Notifications   Notifications `json:"notifications"`
}

type SalaryRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type Notifications struct {
	Email        bool `json:"email"`
	JobAlerts    bool `json:"jobAlerts"`
	WeeklyDigest bool `json:"weeklyDigest"`
}

// DefaultPreferences mirrors the defaults a fresh account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		JobTypes: []string{},
		Notifications: Notifications{
			Email:     true,
			JobAlerts: true,
		},
	}
}

// EffectiveSkills is the list matching runs against: parsed résumé skills
// first, manual skills after, in their stored order.
func (u User) EffectiveSkills() []string {
	out := make([]string, 0)
	if u.ParsedResume != nil {
		out = append(out, u.ParsedResume.Skills...)
	}
	out = append(out, u.ManualSkills...)
	return out
}
