package models

// ProfileResponse is the public projection of a user. It structurally
// excludes the password hash and session token.
type ProfileResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
