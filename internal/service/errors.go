package service

import "errors"

// Caller-facing error conditions. Controllers match these with errors.Is
// and map them to HTTP statuses; anything else is treated as an internal
// failure and never echoed to the client.
var (
	// ErrDuplicateAccount means the email is already registered
	ErrDuplicateAccount = errors.New("account with this email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot tell which part failed
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoSession means the presented token matches no active session
	ErrNoSession = errors.New("no active session")
	// ErrIdentityMismatch means the session is live but belongs to a
	// different user than the caller claimed
	ErrIdentityMismatch = errors.New("session does not match user")
	// ErrInvalidSession means the presented token is empty
	ErrInvalidSession = errors.New("invalid session token")
	// ErrNotFound means no user exists with the given id
	ErrNotFound = errors.New("user not found")
)
