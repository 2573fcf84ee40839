package models

import "time"

// AuthResponse represents the user payload returned after successful
// registration or login. It never carries the password hash or the
// session token - the token travels only as a cookie.
type AuthResponse struct {
	UserID    string    `json:"user_id"` // UUID
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    AuthResponse `json:"user"`
}

// LoginResult bundles the freshly issued session token with the user
// payload. The controller sets the token as the session cookie; it is
// excluded from the JSON body.
type LoginResult struct {
	Token string       `json:"-"`
	User  AuthResponse `json:"user"`
}
