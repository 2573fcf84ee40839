package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts-be/internal/entities"
)

var userCols = []string{"id", "email", "password_hash", "first_name", "last_name", "session_token", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewUserRepository(db), mock, db
}

func userRow(token *string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userCols).
		AddRow("u-1", "a@x.com", "hashed", "Ada", "Lovelace", token, now, now)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("u-1", "a@x.com", "hashed", "Ada", "Lovelace").
		WillReturnRows(userRow(nil))

	user, err := repo.Create(&entities.User{
		ID:           "u-1",
		Email:        "a@x.com",
		PasswordHash: "hashed",
		FirstName:    "Ada",
		LastName:     "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Nil(t, user.SessionToken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Create(&entities.User{ID: "u-1", Email: "a@x.com"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail("nobody@x.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFindBySessionToken_Success(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	tok := "tok-1"
	mock.ExpectQuery("SELECT (.+) FROM users WHERE session_token").
		WithArgs("tok-1").
		WillReturnRows(userRow(&tok))

	user, err := repo.FindBySessionToken("tok-1")
	require.NoError(t, err)
	require.NotNil(t, user.SessionToken)
	assert.Equal(t, "tok-1", *user.SessionToken)
}

func TestUpdateSessionToken(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET session_token").
		WithArgs("tok-2", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateSessionToken("u-1", "tok-2"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSessionToken_UnknownUser(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET session_token").
		WithArgs("tok-2", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.UpdateSessionToken("ghost", "tok-2"), ErrNotFound)
}

func TestClearSessionToken(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET session_token = NULL").
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	cleared, err := repo.ClearSessionToken("tok-1")
	require.NoError(t, err)
	assert.True(t, cleared)
}

func TestClearSessionToken_UnknownToken(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET session_token = NULL").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	cleared, err := repo.ClearSessionToken("ghost")
	require.NoError(t, err)
	assert.False(t, cleared)
}
