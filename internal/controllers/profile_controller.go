package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"accounts-be/internal/entities"
	"accounts-be/internal/middleware"
	"accounts-be/internal/service"
)

type ProfileController struct {
	profileService service.ProfileService
}

func NewProfileController(profileService service.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile handles GET /api/v1/users/:id - public profile projection
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID := c.Param("id")

	profile, err := pc.profileService.GetPublicProfile(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
			return
		}
		log.Printf("profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetMe handles GET /api/v1/me - profile of the authenticated principal
// (set on the context by the session middleware)
func (pc *ProfileController) GetMe(c *gin.Context) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session",
		})
		return
	}
	user := value.(*entities.User)

	profile, err := pc.profileService.GetPublicProfile(user.ID)
	if err != nil {
		log.Printf("profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
