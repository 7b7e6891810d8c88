package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clipfeed/backend/internal/cache"
	"github.com/clipfeed/backend/internal/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// VideoLister provides the ids of videos created by a user. Implemented by
// the video repository; declared here so this package does not depend on
// video internals.
type VideoLister interface {
	IDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Service defines the user operations used by the HTTP layer
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Get(ctx context.Context, id uuid.UUID) (*Profile, error)
	Exists(ctx context.Context, username string) (bool, error)
	Login(ctx context.Context, username, password string) (*User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo       Repository
	videos     VideoLister
	cache      cache.Service // optional; nil disables profile caching
	logger     logger.Logger
	profileTTL time.Duration
}

// NewService creates a new user service
func NewService(repo Repository, videos VideoLister, cacheService cache.Service, logger logger.Logger, profileTTL time.Duration) Service {
	return &service{
		repo:       repo,
		videos:     videos,
		cache:      cacheService,
		logger:     logger,
		profileTTL: profileTTL,
	}
}

// Register creates a new account with a hashed credential. Username
// uniqueness is checked before the insert; the check and the insert are not
// atomic, the unique index is the backstop.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:    req.Username,
		Password:    string(hash),
		Gender:      req.Gender,
		Displayname: req.Displayname,
		ProfileImg:  req.ProfileImg,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.LogInfo("User registered", map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	})
	return user, nil
}

// Get returns the public profile of a user, read through the cache when
// one is configured.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	key := profileCacheKey(id)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var profile Profile
			if err := json.Unmarshal(cached, &profile); err == nil {
				return &profile, nil
			}
			s.logger.LogDebug("Discarding undecodable cached profile", map[string]interface{}{
				"userID": id,
			})
		case !errors.Is(err, cache.ErrCacheMiss):
			// A miss is the normal cold path; anything else is a transport
			// failure worth surfacing before falling back to the database.
			s.logger.LogWarn("Profile cache read failed", map[string]interface{}{
				"userID": id,
				"error":  err.Error(),
			})
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	videoIDs, err := s.videos.IDsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		Displayname: user.Displayname,
		ProfileImg:  user.ProfileImg,
		VideoList:   videoIDs,
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(profile); err == nil {
			if err := s.cache.Set(ctx, key, encoded, s.profileTTL); err != nil {
				s.logger.LogWarn("Failed to cache profile", map[string]interface{}{
					"userID": id,
					"error":  err.Error(),
				})
			}
		}
	}

	return profile, nil
}

// Exists reports whether a username is already registered
func (s *service) Exists(ctx context.Context, username string) (bool, error) {
	return s.repo.ExistsByUsername(ctx, username)
}

// Login verifies credentials and returns the matching user.
// Returns ErrInvalidCredentials for both unknown usernames and wrong
// passwords so callers cannot distinguish the two.
func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Update applies a partial profile update and invalidates the cached profile
func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Empty strings count as absent, same as missing fields.
	if req.Displayname != nil && *req.Displayname != "" {
		user.Displayname = *req.Displayname
	}
	if req.ProfileImg != nil && *req.ProfileImg != "" {
		user.ProfileImg = *req.ProfileImg
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.invalidateProfile(ctx, id)

	s.logger.LogInfo("User updated", map[string]interface{}{
		"userID": id,
	})
	return user, nil
}

// Delete removes an account and invalidates the cached profile.
// The user's videos are intentionally left in place.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateProfile(ctx, id)

	s.logger.LogInfo("User deleted", map[string]interface{}{
		"userID": id,
	})
	return nil
}

func (s *service) invalidateProfile(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, profileCacheKey(id)); err != nil {
		s.logger.LogWarn("Failed to invalidate cached profile", map[string]interface{}{
			"userID": id,
			"error":  err.Error(),
		})
	}
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:profile:%s", id)
}
