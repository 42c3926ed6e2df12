package service

import (
	"fmt"
	"math"

	"homebuy-agent/domain"
)

// validateInput checks the preconditions the engine relies on. The engine
// itself never fails; these guards keep callers inside its domain.
func validateInput(input domain.PercentInput) error {
	for _, v := range input.Floats() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: parameters must be finite numbers", ErrInvalidInput)
		}
	}
	if input.HomePrice < 0 {
		return fmt.Errorf("%w: home price cannot be negative", ErrInvalidInput)
	}
	if input.HomePrice > MaxHomePrice {
		return fmt.Errorf("%w: home price exceeds the maximum of $%.2f", ErrInvalidInput, MaxHomePrice)
	}
	if input.HoldingPeriod < 0 {
		return fmt.Errorf("%w: holding period cannot be negative", ErrInvalidInput)
	}
	if input.HoldingPeriod > MaxHoldingPeriodYears {
		return fmt.Errorf("%w: holding period exceeds the maximum of %d years", ErrInvalidInput, MaxHoldingPeriodYears)
	}
	// La cartera pignorada se calcula dividiendo por el LTV
	if input.SecuritiesLTVRatio <= 0 {
		return fmt.Errorf("%w: securities LTV must be greater than zero", ErrInvalidInput)
	}
	// Una tasa mensual que no mueve 1+r deja la anualidad sin denominador
	monthly := input.Normalize().MortgageRate / MonthsPerYear
	if monthly != 0 && 1+monthly == 1 {
		return fmt.Errorf("%w: mortgage rate %g%% is too small to amortize, use 0 for an interest-free loan", ErrInvalidInput, input.MortgageRate)
	}
	for _, rate := range []float64{
		input.MortgageRate, input.ReferenceRate, input.InvestReturn, input.AppreciationRate,
	} {
		if math.Abs(rate) > MaxRatePercent {
			return fmt.Errorf("%w: rates cannot exceed %.0f%%", ErrInvalidInput, MaxRatePercent)
		}
	}
	return nil
}
