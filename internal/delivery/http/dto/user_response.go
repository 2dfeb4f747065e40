package dto

import (
	"time"

	"jobpilot/internal/domain/user"
)

// UserResponse is the profile shape returned by auth and user endpoints.
// The password hash never leaves the usecase layer.
type UserResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	ResumeURL      string             `json:"resumeUrl,omitempty"`
	ResumeUploaded bool               `json:"resumeUploaded"`
	ParsedResume   *user.ParsedResume `json:"parsedResumeData,omitempty"`
	ResumeParsedAt *time.Time         `json:"resumeParsedAt,omitempty"`
	Preferences    user.Preferences   `json:"preferences"`
	ManualSkills   []string           `json:"manualSkills"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func FromUser(u user.User) UserResponse {
	manual := u.ManualSkills
	if manual == nil {
		manual = []string{}
	}
	return UserResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		ResumeURL:      u.ResumeURL,
		ResumeUploaded: u.ResumeUploaded,
		ParsedResume:   u.ParsedResume,
		ResumeParsedAt: u.ResumeParsedAt,
		Preferences:    u.Preferences,
		ManualSkills:   manual,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
