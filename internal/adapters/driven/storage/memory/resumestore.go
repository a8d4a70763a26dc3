package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// Ensure ResumeStore implements the interface.
var _ driven.ResumeStore = (*ResumeStore)(nil)

// ResumeStore is an in-memory implementation of driven.ResumeStore.
type ResumeStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.OptimizedResume
}

// NewResumeStore creates a new in-memory resume store.
func NewResumeStore() *ResumeStore {
	return &ResumeStore{
		items: make(map[int64]domain.OptimizedResume),
	}
}

// Add stores a resume under the next key.
func (s *ResumeStore) Add(_ context.Context, r *domain.OptimizedResume) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.nextID++
	r.ID = s.nextID
	s.items[r.ID] = *r
	return r.ID, nil
}

// Get retrieves a resume by key.
func (s *ResumeStore) Get(_ context.Context, id int64) (*domain.OptimizedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &r, nil
}

// List returns all resumes, newest first.
func (s *ResumeStore) List(_ context.Context) ([]domain.OptimizedResume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.OptimizedResume, 0, len(s.items))
	for _, r := range s.items {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

// Delete removes a resume. Missing keys are ignored.
func (s *ResumeStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}
