// Package service provides business logic for the application.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/userdir/userdir/internal/cache"
	"github.com/userdir/userdir/internal/metrics"
	"github.com/userdir/userdir/internal/model"
	"github.com/userdir/userdir/internal/repository"
)

// Service errors.
var (
	ErrMissingFields = errors.New("username and email are required")
	ErrUserExists    = errors.New("username or email already exists")
)

// userStore is the slice of the repository the service depends on.
type userStore interface {
	CreateUser(ctx context.Context, username, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// listingCache is the slice of the cache the service depends on.
type listingCache interface {
	GetListing(ctx context.Context) ([]byte, error)
	SetListing(ctx context.Context, payload []byte) error
	InvalidateListing(ctx context.Context) error
}

// UserService handles user business logic. The listing read path is
// cache-aside: consult the cache first, fall back to the store on a miss,
// and repopulate the cache before returning. Writes go straight to the
// store and invalidate the cached listing afterwards.
type UserService struct {
	store   userStore
	cache   listingCache
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store userStore, listings listingCache, recorder metrics.Recorder, logger *slog.Logger) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		store:   store,
		cache:   listings,
		metrics: recorder,
		logger:  logger,
	}
}

// ListUsers returns the serialized JSON array of all users. A cache hit
// returns the cached payload verbatim; a miss recomputes the listing from
// the store and returns exactly the bytes it cached, so two reads within
// one TTL window are byte-identical.
//
// Cache failures degrade to a store-only read: the listing stays available
// when Redis is down, at the cost of recomputing on every call.
func (s *UserService) ListUsers(ctx context.Context) ([]byte, error) {
	payload, err := s.cache.GetListing(ctx)
	if err == nil {
		s.metrics.IncListingCacheHit()
		return payload, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("listing cache read failed, serving from store", "error", err)
	}
	s.metrics.IncListingCacheMiss()

	start := time.Now()

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	payload, err = json.Marshal(users)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize user listing: %w", err)
	}

	if err := s.cache.SetListing(ctx, payload); err != nil {
		s.logger.Warn("listing cache write failed", "error", err)
	}

	s.metrics.ObserveListingRefreshDuration(time.Since(start))

	return payload, nil
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Username string
	Email    string
}

// CreateUser validates the input, inserts the record, and invalidates the
// cached listing. The insert is sequenced strictly before the invalidation;
// if the insert fails the cache is left untouched.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, ErrMissingFields
	}

	user, err := s.store.CreateUser(ctx, input.Username, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()

	// A failed invalidation leaves a stale listing behind for at most one
	// TTL window; the create itself still succeeded.
	if err := s.cache.InvalidateListing(ctx); err != nil {
		s.logger.Error("listing invalidation failed",
			"error", err,
			"user_id", user.ID,
		)
	}

	return user, nil
}
