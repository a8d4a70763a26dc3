package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
// Profiles are deep-copied on the way in and out so callers cannot
// mutate stored state through shared slices.
type ProfileStore struct {
	mu      sync.RWMutex
	profile []byte
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Get retrieves the singleton profile.
func (s *ProfileStore) Get(_ context.Context) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, domain.ErrNotFound
	}
	var p domain.Profile
	if err := json.Unmarshal(s.profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Put overwrites the singleton profile.
func (s *ProfileStore) Put(_ context.Context, profile domain.Profile) error {
	profile.ID = domain.ProfileID
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = data
	return nil
}
