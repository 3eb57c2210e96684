package dto

// AuthResponse is returned after a successful login or token refresh.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"` // always "Bearer"
	ExpiresIn   int64        `json:"expiresIn"` // seconds until expiry
	User        UserResponse `json:"user"`
}
