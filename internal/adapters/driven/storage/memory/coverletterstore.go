package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
)

// Ensure CoverLetterStore implements the interface.
var _ driven.CoverLetterStore = (*CoverLetterStore)(nil)

// CoverLetterStore is an in-memory implementation of driven.CoverLetterStore.
type CoverLetterStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.CoverLetter
}

// NewCoverLetterStore creates a new in-memory cover letter store.
func NewCoverLetterStore() *CoverLetterStore {
	return &CoverLetterStore{
		items: make(map[int64]domain.CoverLetter),
	}
}

// Add stores a cover letter under the next key.
func (s *CoverLetterStore) Add(_ context.Context, cl *domain.CoverLetter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cl.CreatedAt.IsZero() {
		cl.CreatedAt = time.Now()
	}
	s.nextID++
	cl.ID = s.nextID
	s.items[cl.ID] = *cl
	return cl.ID, nil
}

// Get retrieves a cover letter by key.
func (s *CoverLetterStore) Get(_ context.Context, id int64) (*domain.CoverLetter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cl, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cl, nil
}

// List returns all cover letters, newest first.
func (s *CoverLetterStore) List(_ context.Context) ([]domain.CoverLetter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CoverLetter, 0, len(s.items))
	for _, cl := range s.items {
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})
	return out, nil
}
