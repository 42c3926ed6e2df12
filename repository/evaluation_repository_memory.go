package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"homebuy-agent/domain"
)

// EvaluationRepositoryMemory is an in-memory implementation of EvaluationRepository.
type EvaluationRepositoryMemory struct {
	mu    sync.RWMutex
	data  map[string]domain.Evaluation
	order []string
}

// NewEvaluationRepositoryMemory creates a new in-memory evaluation repository.
func NewEvaluationRepositoryMemory() *EvaluationRepositoryMemory {
	return &EvaluationRepositoryMemory{
		data: make(map[string]domain.Evaluation),
	}
}

// Save assigns an ID and creation time to the evaluation and stores a copy.
func (r *EvaluationRepositoryMemory) Save(_ context.Context, evaluation *domain.Evaluation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	evaluation.ID = uuid.NewString()
	evaluation.CreatedAt = time.Now().UTC()

	stored := *evaluation
	stored.Results = append([]domain.ScenarioResult(nil), evaluation.Results...)
	r.data[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return nil
}

func (r *EvaluationRepositoryMemory) Get(_ context.Context, id string) (domain.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	evaluation, ok := r.data[id]
	if !ok {
		return domain.Evaluation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return evaluation, nil
}

// List returns the stored evaluations, oldest first.
func (r *EvaluationRepositoryMemory) List(_ context.Context) ([]domain.Evaluation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Evaluation, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.data[id])
	}
	return out, nil
}
