package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"

	"homebuy-agent/domain"
	"homebuy-agent/repository"
)

// Explainer writes a short narrative for an evaluation.
type Explainer interface {
	Explain(ctx context.Context, evaluation domain.Evaluation) string
}

type EvaluationService struct {
	repo      repository.EvaluationRepository
	cache     repository.CacheRepository
	explainer Explainer
	cacheTTL  time.Duration
}

// NewEvaluationService creates a new EvaluationService. explainer may be nil.
func NewEvaluationService(
	repo repository.EvaluationRepository,
	cache repository.CacheRepository,
	explainer Explainer,
	cacheTTL time.Duration,
) *EvaluationService {
	return &EvaluationService{
		repo:      repo,
		cache:     cache,
		explainer: explainer,
		cacheTTL:  cacheTTL,
	}
}

// Evaluate validates and normalizes input, then runs the four scenarios.
// Identical inputs are answered from the cache.
func (s *EvaluationService) Evaluate(
	ctx context.Context,
	input domain.PercentInput,
) (domain.Evaluation, error) {
	if err := validateInput(input); err != nil {
		return domain.Evaluation{}, err
	}

	params := input.Normalize()

	key, err := CacheKey(params)
	if err != nil {
		return domain.Evaluation{}, err
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var evaluation domain.Evaluation
		if err := json.Unmarshal([]byte(cached), &evaluation); err == nil {
			return s.ensureStored(ctx, key, evaluation), nil
		}
		log.Printf("Warning: discarding unreadable cache entry %s", key)
	}

	evaluation := EvaluateAll(params)
	if s.explainer != nil {
		evaluation.Explanation = s.explainer.Explain(ctx, evaluation)
	}

	s.store(ctx, key, &evaluation)
	return evaluation, nil
}

// ensureStored returns a cached evaluation whose ID can be fetched with Get.
// The cache may outlive the repository (a Redis cache across a restart), in
// which case the evaluation is saved again under a fresh ID.
func (s *EvaluationService) ensureStored(ctx context.Context, key string, evaluation domain.Evaluation) domain.Evaluation {
	if evaluation.ID != "" {
		if _, err := s.repo.Get(ctx, evaluation.ID); err == nil {
			return evaluation
		}
	}

	evaluation.ID = ""
	s.store(ctx, key, &evaluation)
	return evaluation
}

// store saves evaluation and caches it under key. Neither step is fatal;
// if the save fails the ID stays empty.
func (s *EvaluationService) store(ctx context.Context, key string, evaluation *domain.Evaluation) {
	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(ctx, evaluation); err != nil {
		log.Printf("Warning: failed to save evaluation: %v", err)
	}

	if payload, err := json.Marshal(evaluation); err != nil {
		log.Printf("Warning: failed to encode evaluation for cache: %v", err)
	} else if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache evaluation: %v", err)
	}
}

// Get returns a previously stored evaluation.
func (s *EvaluationService) Get(ctx context.Context, id string) (domain.Evaluation, error) {
	return s.repo.Get(ctx, id)
}

// List returns every stored evaluation, oldest first.
func (s *EvaluationService) List(ctx context.Context) ([]domain.Evaluation, error) {
	return s.repo.List(ctx)
}

// CacheKey derives the cache key of a normalized parameter set.
func CacheKey(params domain.InputParameters) (string, error) {
	payload, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode parameters: %w", err)
	}
	return fmt.Sprintf("evaluation:%016x", xxhash.Sum64(payload)), nil
}
