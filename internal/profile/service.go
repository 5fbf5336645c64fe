package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/storage"
)

// Service manages the local player profile
type Service interface {
	Get(ctx context.Context) (domain.Profile, error)
	Update(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

type service struct {
	store storage.Store
}

// NewService creates a new profile service
func NewService(store storage.Store) Service {
	return &service{store: store}
}

// Get returns the stored profile, falling back to the guest default on
// a fresh save.
func (s *service) Get(ctx context.Context) (domain.Profile, error) {
	var p domain.Profile
	found, err := s.store.Get(ctx, storage.KeyProfile, &p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("%s: %w", ErrContextLoadProfile, err)
	}
	if !found {
		return domain.DefaultProfile(), nil
	}
	return p, nil
}

// Update persists the profile. An empty username falls back to the
// guest default rather than erasing the name.
func (s *service) Update(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.Username = strings.TrimSpace(p.Username)
	if p.Username == "" {
		p.Username = domain.DefaultUsername
	}
	if len([]rune(p.Username)) > MaxUsernameLength {
		return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextUsernameTooLong)
	}
	if len([]rune(p.Bio)) > MaxBioLength {
		return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextBioTooLong)
	}

	if err := s.store.Put(ctx, storage.KeyProfile, p); err != nil {
		return domain.Profile{}, fmt.Errorf("%s: %w", ErrContextSaveProfile, err)
	}

	logger.FromContext(ctx).Info(LogMsgProfileUpdated, "username", p.Username)
	return p, nil
}
