package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kelliceng/BMC-Dining-App/internal/domain"
)

// memorySubmissionStore keeps records in process memory. It backs tests and
// local runs that have no MongoDB at hand.
type memorySubmissionStore struct {
	mu          sync.RWMutex
	submissions []domain.Submission
}

func NewMemoryStore() SubmissionStore {
	return &memorySubmissionStore{}
}

func (s *memorySubmissionStore) Insert(ctx context.Context, sub *domain.Submission) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *sub
	stored.ID = uuid.New().String()
	if stored.DateAdded.IsZero() {
		stored.DateAdded = time.Now().UTC()
	}

	s.submissions = append(s.submissions, stored)
	return &stored, nil
}

func (s *memorySubmissionStore) FindAll(ctx context.Context) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Submission, len(s.submissions))
	copy(out, s.submissions)
	return out, nil
}

func (s *memorySubmissionStore) Ping(ctx context.Context) error {
	return nil
}
