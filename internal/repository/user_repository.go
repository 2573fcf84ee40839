package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"accounts-be/internal/entities"
)

var (
	// ErrNotFound is returned when no user matches the lookup key
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert hits the unique email constraint
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(user *entities.User) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindBySessionToken(token string) (*entities.User, error)
	UpdateSessionToken(userID, token string) error
	ClearSessionToken(token string) (bool, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, email, password_hash, first_name, last_name, session_token, created_at, updated_at"

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.SessionToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	row := r.db.QueryRow(query, user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName)
	created, err := scanUser(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(query, id))
}

// FindByEmail finds a user by email. Emails are stored lowercased, so the
// caller is expected to normalize before looking up.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(query, email))
}

// FindBySessionToken finds the user holding the given session token
func (r *userRepository) FindBySessionToken(token string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE session_token = $1`
	return scanUser(r.db.QueryRow(query, token))
}

// UpdateSessionToken stores a fresh session token on the user record,
// overwriting any previous token. The single UPDATE keeps the transition
// atomic per record.
func (r *userRepository) UpdateSessionToken(userID, token string) error {
	query := `UPDATE users SET session_token = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.Exec(query, token, userID)
	if err != nil {
		return fmt.Errorf("failed to update session token: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearSessionToken clears the session token on whichever record holds it.
// Returns false when no record held the token.
func (r *userRepository) ClearSessionToken(token string) (bool, error) {
	query := `UPDATE users SET session_token = NULL, updated_at = NOW() WHERE session_token = $1`

	result, err := r.db.Exec(query, token)
	if err != nil {
		return false, fmt.Errorf("failed to clear session token: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows > 0, nil
}
