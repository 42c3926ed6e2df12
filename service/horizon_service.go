package service

import (
	"context"
	"fmt"

	"homebuy-agent/domain"
)

type HorizonService struct{}

func NewHorizonService() *HorizonService {
	return &HorizonService{}
}

// Sweep evaluates the same parameters for every holding period between
// MinYears and MaxYears and records where each financed scenario first ends
// ahead of all-cash.
func (s *HorizonService) Sweep(
	ctx context.Context,
	input domain.HorizonInput,
) (domain.HorizonResult, error) {

	// Validaciones
	if input.MinYears < 0 || input.MaxYears < 0 {
		return domain.HorizonResult{}, fmt.Errorf("%w: horizons cannot be negative", ErrInvalidInput)
	}
	if input.MinYears > input.MaxYears {
		return domain.HorizonResult{}, fmt.Errorf("%w: minimum horizon is greater than maximum", ErrInvalidInput)
	}
	if input.MaxYears > MaxHoldingPeriodYears {
		return domain.HorizonResult{}, fmt.Errorf("%w: maximum horizon exceeds %d years", ErrInvalidInput, MaxHoldingPeriodYears)
	}
	if input.MaxYears-input.MinYears > MaxHorizonRangeYears {
		return domain.HorizonResult{}, fmt.Errorf("%w: horizon range exceeds %d years", ErrInvalidInput, MaxHorizonRangeYears)
	}

	params := input.Parameters
	params.HoldingPeriod = input.MinYears
	if err := validateInput(params); err != nil {
		return domain.HorizonResult{}, err
	}

	base := params.Normalize()
	result := domain.HorizonResult{
		Points:    make([]domain.HorizonPoint, 0, input.MaxYears-input.MinYears+1),
		Breakeven: make(map[domain.Scenario]int),
	}

	for years := input.MinYears; years <= input.MaxYears; years++ {
		if err := ctx.Err(); err != nil {
			return domain.HorizonResult{}, err
		}

		in := base
		in.HoldingPeriod = years
		evaluation := EvaluateAll(in)

		point := domain.HorizonPoint{
			HoldingPeriod: years,
			Best:          evaluation.Best().Scenario,
			Worst:         evaluation.Worst().Scenario,
		}
		for i, r := range evaluation.Results {
			point.NetVsAllCash[i] = r.NetVsAllCash
			point.NetWorth[i] = r.TotalNetWorth

			if r.Scenario == domain.ScenarioAllCash || r.Failed() || r.NetVsAllCash <= 0 {
				continue
			}
			if _, seen := result.Breakeven[r.Scenario]; !seen {
				result.Breakeven[r.Scenario] = years
			}
		}
		result.Points = append(result.Points, point)
	}

	return result, nil
}
