package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts-be/internal/service"
)

// SessionCookieName is the cookie carrying the opaque session token
const SessionCookieName = "session_id"

// ClaimedUserHeader carries the user id the client asserts the session
// belongs to. The session is only accepted when both match.
const ClaimedUserHeader = "X-User-ID"

// ContextUserKey is the gin context key holding the authenticated user
const ContextUserKey = "auth_user"

// SessionAuth returns a Gin middleware that validates the session cookie
// against the claimed user id and stores the resolved user on the context
func SessionAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken, err := c.Cookie(SessionCookieName)
		if err != nil {
			sessionToken = ""
		}
		claimedUserID := c.GetHeader(ClaimedUserHeader)

		user, err := authService.ValidateSession(sessionToken, claimedUserID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoSession):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "No active session",
				})
			case errors.Is(err, service.ErrIdentityMismatch):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Session does not match user",
				})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
