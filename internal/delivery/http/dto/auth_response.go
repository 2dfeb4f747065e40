package dto

// AuthResponse carries the profile plus the token pair issued on register,
// login and refresh.
type AuthResponse struct {
	User         *UserResponse `json:"user,omitempty"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}
