package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounts-be/internal/entities"
	"accounts-be/internal/models"
	"accounts-be/internal/service"
)

type scriptedAuthService struct {
	user *entities.User
	err  error
}

func (s *scriptedAuthService) Register(*models.RegisterRequest) (*models.RegisterResponse, error) {
	return nil, nil
}

func (s *scriptedAuthService) Login(*models.LoginRequest) (*models.LoginResult, error) {
	return nil, nil
}

func (s *scriptedAuthService) ValidateSession(sessionToken, claimedUserID string) (*entities.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *scriptedAuthService) Logout(string) error { return nil }

func newProtectedRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", SessionAuth(svc), func(c *gin.Context) {
		user := c.MustGet(ContextUserKey).(*entities.User)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func TestSessionAuth_PassesPrincipal(t *testing.T) {
	router := newProtectedRouter(&scriptedAuthService{user: &entities.User{ID: "u-1"}})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-123"})
	req.Header.Set(ClaimedUserHeader, "u-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u-1"}`, w.Body.String())
}

func TestSessionAuth_RejectsMissingSession(t *testing.T) {
	router := newProtectedRouter(&scriptedAuthService{err: service.ErrNoSession})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuth_RejectsIdentityMismatch(t *testing.T) {
	router := newProtectedRouter(&scriptedAuthService{err: service.ErrIdentityMismatch})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-123"})
	req.Header.Set(ClaimedUserHeader, "someone-else")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
