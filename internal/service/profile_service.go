package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accounts-be/internal/cache"
	"accounts-be/internal/models"
	"accounts-be/internal/repository"
)

// ProfileService defines the interface for public profile lookups
type ProfileService interface {
	GetPublicProfile(userID string) (*models.ProfileResponse, error)
}

type profileService struct {
	repo     repository.UserRepository
	cache    cache.Cache
	cacheTTL time.Duration
	ctx      context.Context
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.UserRepository, cacheClient cache.Cache, cacheTTL time.Duration) ProfileService {
	svc := &profileService{
		repo:     repo,
		cacheTTL: cacheTTL,
		ctx:      context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// GetPublicProfile returns the safe projection of a user: first name, last
// name, email. The projection type has no hash or token fields, so nothing
// sensitive can leak regardless of user state.
func (s *profileService) GetPublicProfile(userID string) (*models.ProfileResponse, error) {
	cacheKey := fmt.Sprintf("profile:%s", userID)

	// Check Redis cache first (if available)
	if s.cache != nil {
		var cached models.ProfileResponse
		if err := s.cache.GetJSON(s.ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	profile := &models.ProfileResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}

	// Cache the projection (best effort - ignore cache errors)
	if s.cache != nil {
		_ = s.cache.SetJSON(s.ctx, cacheKey, profile, s.cacheTTL)
	}

	return profile, nil
}
