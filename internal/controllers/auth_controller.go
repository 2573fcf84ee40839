package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts-be/internal/middleware"
	"accounts-be/internal/models"
	"accounts-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /api/v1/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		log.Printf("register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/v1/auth/login - sets the session cookie on success
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	result, err := ac.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Session cookie: no MaxAge, HttpOnly so scripts cannot read the token
	c.SetCookie(middleware.SessionCookieName, result.Token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, result.User)
}

// Logout handles POST /api/v1/auth/logout - idempotent, clears the cookie
func (ac *AuthController) Logout(c *gin.Context) {
	sessionToken, _ := c.Cookie(middleware.SessionCookieName)

	if err := ac.authService.Logout(sessionToken); err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid session ID",
			})
			return
		}
		log.Printf("logout failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// ValidateSession handles POST /api/v1/auth/validate - checks the session
// cookie against the user id the caller claims it belongs to
func (ac *AuthController) ValidateSession(c *gin.Context) {
	var req models.ValidateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	sessionToken, _ := c.Cookie(middleware.SessionCookieName)

	if _, err := ac.authService.ValidateSession(sessionToken, req.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrNoSession):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "No active session",
			})
		case errors.Is(err, service.ErrIdentityMismatch):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session does not match user",
			})
		default:
			log.Printf("session validation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session is valid.",
	})
}
