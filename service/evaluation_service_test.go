package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebuy-agent/domain"
	"homebuy-agent/repository"
)

type MockEvaluationRepository struct {
	SaveCalls  int
	ForceError bool
	saved      []domain.Evaluation
}

func (m *MockEvaluationRepository) Save(_ context.Context, evaluation *domain.Evaluation) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	evaluation.ID = "eval-1"
	m.saved = append(m.saved, *evaluation)
	return nil
}

func (m *MockEvaluationRepository) Get(_ context.Context, id string) (domain.Evaluation, error) {
	for _, e := range m.saved {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Evaluation{}, repository.ErrNotFound
}

func (m *MockEvaluationRepository) List(context.Context) ([]domain.Evaluation, error) {
	return m.saved, nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) (string, bool) { return "", false }
func (failingCache) Set(context.Context, string, string, time.Duration) error {
	return errors.New("cache down")
}

type countingExplainer struct{ calls int }

func (c *countingExplainer) Explain(context.Context, domain.Evaluation) string {
	c.calls++
	return "explained"
}

func TestEvaluationService_Evaluate(t *testing.T) {
	repo := &MockEvaluationRepository{}
	cache := repository.NewMockCache()
	explainer := &countingExplainer{}
	svc := NewEvaluationService(repo, cache, explainer, time.Hour)

	evaluation, err := svc.Evaluate(context.Background(), domain.DefaultPercentInput())
	require.NoError(t, err)

	assert.Equal(t, "eval-1", evaluation.ID)
	assert.Equal(t, "explained", evaluation.Explanation)
	assert.Len(t, evaluation.Results, domain.ScenarioCount)
	assert.InDelta(t, 0.069, evaluation.Input.MortgageRate, 1e-12)
	assert.Equal(t, 1, repo.SaveCalls)
	assert.Equal(t, 1, cache.Len())
}

func TestEvaluationService_CachesIdenticalInputs(t *testing.T) {
	repo := &MockEvaluationRepository{}
	explainer := &countingExplainer{}
	svc := NewEvaluationService(repo, repository.NewMockCache(), explainer, time.Hour)

	first, err := svc.Evaluate(context.Background(), domain.DefaultPercentInput())
	require.NoError(t, err)
	second, err := svc.Evaluate(context.Background(), domain.DefaultPercentInput())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, 1, repo.SaveCalls)
	assert.Equal(t, 1, explainer.calls)

	changed := domain.DefaultPercentInput()
	changed.ReferenceRate = 3
	_, err = svc.Evaluate(context.Background(), changed)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.SaveCalls)
}

func TestEvaluationService_StorageFailuresAreNotFatal(t *testing.T) {
	repo := &MockEvaluationRepository{ForceError: true}
	svc := NewEvaluationService(repo, failingCache{}, nil, time.Hour)

	evaluation, err := svc.Evaluate(context.Background(), domain.DefaultPercentInput())
	require.NoError(t, err)
	assert.Empty(t, evaluation.ID)
	assert.Empty(t, evaluation.Explanation)
	assert.Len(t, evaluation.Results, domain.ScenarioCount)
}

func TestEvaluationService_IgnoresCorruptCacheEntry(t *testing.T) {
	cache := repository.NewMockCache()
	key, err := CacheKey(domain.DefaultPercentInput().Normalize())
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), key, "{not json", 0))

	svc := NewEvaluationService(&MockEvaluationRepository{}, cache, nil, 0)
	evaluation, err := svc.Evaluate(context.Background(), domain.DefaultPercentInput())
	require.NoError(t, err)
	assert.Len(t, evaluation.Results, domain.ScenarioCount)

	cached, ok := cache.Get(context.Background(), key)
	require.True(t, ok)
	var decoded domain.Evaluation
	require.NoError(t, json.Unmarshal([]byte(cached), &decoded))
	assert.Equal(t, evaluation.Results, decoded.Results)
}

func TestEvaluationService_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PercentInput)
	}{
		{name: "zero ltv", mutate: func(p *domain.PercentInput) { p.SecuritiesLTVRatio = 0 }},
		{name: "negative ltv", mutate: func(p *domain.PercentInput) { p.SecuritiesLTVRatio = -10 }},
		{name: "negative holding period", mutate: func(p *domain.PercentInput) { p.HoldingPeriod = -1 }},
		{name: "holding period too long", mutate: func(p *domain.PercentInput) { p.HoldingPeriod = MaxHoldingPeriodYears + 1 }},
		{name: "negative price", mutate: func(p *domain.PercentInput) { p.HomePrice = -1 }},
		{name: "price too high", mutate: func(p *domain.PercentInput) { p.HomePrice = MaxHomePrice * 2 }},
		{name: "nan rate", mutate: func(p *domain.PercentInput) { p.MortgageRate = math.NaN() }},
		{name: "infinite weight", mutate: func(p *domain.PercentInput) { p.HedgeFundWeight = math.Inf(1) }},
		{name: "absurd rate", mutate: func(p *domain.PercentInput) { p.InvestReturn = 5000 }},
		{name: "rate too small to amortize", mutate: func(p *domain.PercentInput) { p.MortgageRate = 1e-14 }},
		{name: "negative rate too small to amortize", mutate: func(p *domain.PercentInput) { p.MortgageRate = -1e-14 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockEvaluationRepository{}
			svc := NewEvaluationService(repo, repository.NewMockCache(), nil, time.Hour)

			input := domain.DefaultPercentInput()
			tt.mutate(&input)

			_, err := svc.Evaluate(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.SaveCalls, "repository Save should NOT be called")
		})
	}
}

func TestEvaluationService_TinyMortgageRate(t *testing.T) {
	svc := NewEvaluationService(&MockEvaluationRepository{}, repository.NewMockCache(), NewExplanationService("", "", ""), time.Hour)

	input := domain.DefaultPercentInput()
	input.MortgageRate = 1e-14

	assert.NotPanics(t, func() {
		_, err := svc.Evaluate(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	// Small rates that still move 1+r amortize normally.
	input.MortgageRate = 1e-6
	evaluation, err := svc.Evaluate(context.Background(), input)
	require.NoError(t, err)
	for _, r := range evaluation.Results {
		assert.False(t, math.IsInf(r.TotalNetWorth, 0), r.Scenario.String())
		assert.False(t, math.IsNaN(r.TotalNetWorth), r.Scenario.String())
	}
}

func TestEvaluationService_CacheHitWithUnknownID(t *testing.T) {
	ctx := context.Background()
	cache := repository.NewMockCache()
	repo := repository.NewEvaluationRepositoryMemory()

	params := domain.DefaultPercentInput().Normalize()
	key, err := CacheKey(params)
	require.NoError(t, err)

	stale := EvaluateAll(params)
	stale.ID = "stale-id"
	payload, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, key, string(payload), time.Hour))

	svc := NewEvaluationService(repo, cache, nil, time.Hour)
	evaluation, err := svc.Evaluate(ctx, domain.DefaultPercentInput())
	require.NoError(t, err)
	require.NotEmpty(t, evaluation.ID)
	assert.NotEqual(t, "stale-id", evaluation.ID)
	assert.Equal(t, stale.Results, evaluation.Results)

	stored, err := svc.Get(ctx, evaluation.ID)
	require.NoError(t, err)
	assert.Equal(t, evaluation.Results, stored.Results)

	// The refreshed entry is served as is on the next hit.
	again, err := svc.Evaluate(ctx, domain.DefaultPercentInput())
	require.NoError(t, err)
	assert.Equal(t, evaluation.ID, again.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEvaluationService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewEvaluationService(repository.NewEvaluationRepositoryMemory(), repository.NewMockCache(), nil, time.Hour)

	empty, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first, err := svc.Evaluate(ctx, domain.DefaultPercentInput())
	require.NoError(t, err)
	changed := domain.DefaultPercentInput()
	changed.HoldingPeriod = 20
	second, err := svc.Evaluate(ctx, changed)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestEvaluationService_Get(t *testing.T) {
	repo := repository.NewEvaluationRepositoryMemory()
	svc := NewEvaluationService(repo, repository.NewMockCache(), nil, time.Hour)

	evaluation, err := svc.Evaluate(context.Background(), domain.DefaultPercentInput())
	require.NoError(t, err)
	require.NotEmpty(t, evaluation.ID)

	stored, err := svc.Get(context.Background(), evaluation.ID)
	require.NoError(t, err)
	assert.Equal(t, evaluation.Results, stored.Results)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCacheKey(t *testing.T) {
	in := domain.DefaultPercentInput().Normalize()

	a, err := CacheKey(in)
	require.NoError(t, err)
	b, err := CacheKey(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Regexp(t, `^evaluation:[0-9a-f]{16}$`, a)

	in.HoldingPeriod++
	c, err := CacheKey(in)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
