package repository

import (
	"context"
	"errors"

	"homebuy-agent/domain"
)

var ErrNotFound = errors.New("evaluation not found")

type EvaluationRepository interface {
	Save(ctx context.Context, evaluation *domain.Evaluation) error
	Get(ctx context.Context, id string) (domain.Evaluation, error)
	List(ctx context.Context) ([]domain.Evaluation, error)
}
