package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// Ensure JobDescriptionStore implements the interface.
var _ driven.JobDescriptionStore = (*JobDescriptionStore)(nil)

// JobDescriptionStore is an in-memory implementation of driven.JobDescriptionStore.
type JobDescriptionStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.JobDescription
}

// NewJobDescriptionStore creates a new in-memory job description store.
func NewJobDescriptionStore() *JobDescriptionStore {
	return &JobDescriptionStore{
		items: make(map[int64]domain.JobDescription),
	}
}

// Add stores a job description under the next key.
func (s *JobDescriptionStore) Add(_ context.Context, jd *domain.JobDescription) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if jd.CreatedAt.IsZero() {
		jd.CreatedAt = time.Now()
	}
	s.nextID++
	jd.ID = s.nextID
	s.items[jd.ID] = *jd
	return jd.ID, nil
}

// Get retrieves a job description by key.
func (s *JobDescriptionStore) Get(_ context.Context, id int64) (*domain.JobDescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jd, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &jd, nil
}

// List returns all job descriptions, newest first.
func (s *JobDescriptionStore) List(_ context.Context) ([]domain.JobDescription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.JobDescription, 0, len(s.items))
	for _, jd := range s.items {
		out = append(out, jd)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}

// newerFirst orders by creation time descending, then key descending.
func newerFirst(at1 time.Time, id1 int64, at2 time.Time, id2 int64) bool {
	if !at1.Equal(at2) {
		return at1.After(at2)
	}
	return id1 > id2
}
