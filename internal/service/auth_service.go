package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"accounts-be/internal/entities"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
	"accounts-be/internal/token"
)

// AuthService defines the interface for account and session business logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResult, error)
	ValidateSession(sessionToken, claimedUserID string) (*entities.User, error)
	Logout(sessionToken string) error
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
	}
}

// normalizeEmail lowercases emails so "A@x.com" and "a@x.com" are the same
// account. Applied at every entry point that takes an email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account with no active session
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	email := normalizeEmail(req.Email)

	// Check if the email is already taken
	_, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return nil, ErrDuplicateAccount
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(&entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		// The unique constraint backstops a register racing this one
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.RegisterResponse{
		Message: "User registered successfully",
		User:    toAuthResponse(user),
	}, nil
}

// Login verifies credentials and issues a fresh session token. The new token
// overwrites any prior one, so at most one session is live per user.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Same error as a wrong password, to avoid leaking which part failed
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.userRepo.UpdateSessionToken(user.ID, sessionToken); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	return &models.LoginResult{
		Token: sessionToken,
		User:  toAuthResponse(user),
	}, nil
}

// ValidateSession resolves a session token to its user and checks that the
// caller's claimed user id matches. Requiring both values is a second check
// against token/id substitution bugs in the caller.
func (s *authService) ValidateSession(sessionToken, claimedUserID string) (*entities.User, error) {
	if sessionToken == "" {
		return nil, ErrNoSession
	}

	user, err := s.userRepo.FindBySessionToken(sessionToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if claimedUserID == "" || user.ID != claimedUserID {
		return nil, ErrIdentityMismatch
	}

	return user, nil
}

// Logout clears the session holding the given token. Logging out an unknown
// token succeeds, so repeated logouts are idempotent and nothing is leaked
// about whether the session existed.
func (s *authService) Logout(sessionToken string) error {
	if sessionToken == "" {
		return ErrInvalidSession
	}

	if _, err := s.userRepo.ClearSessionToken(sessionToken); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

func toAuthResponse(user *entities.User) models.AuthResponse {
	return models.AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}
