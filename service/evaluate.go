package service

import (
	"fmt"
	"log"

	"homebuy-agent/domain"
)

// ScenarioCalculator computes one scenario from a normalized parameter set.
type ScenarioCalculator func(domain.InputParameters, domain.DerivedParameters) domain.ScenarioResult

// Calculators returns the scenario calculators in evaluation order.
func Calculators() [domain.ScenarioCount]ScenarioCalculator {
	return [domain.ScenarioCount]ScenarioCalculator{
		CalculateAllCash,
		CalculateMortgage,
		CalculateSyntheticLeverage,
		CalculateSecuritiesLoan,
	}
}

// Evaluate runs the four scenarios against in and returns them in scenario
// order with NetVsAllCash filled in.
func Evaluate(in domain.InputParameters) []domain.ScenarioResult {
	results, _ := evaluateWith(in, Calculators())
	return results
}

// EvaluateAll is Evaluate plus the derived parameters and the ranking.
func EvaluateAll(in domain.InputParameters) domain.Evaluation {
	results, derived := evaluateWith(in, Calculators())
	best, worst := Rank(results)
	return domain.Evaluation{
		Input:      in,
		Derived:    derived,
		Results:    results,
		BestIndex:  best,
		WorstIndex: worst,
	}
}

func evaluateWith(in domain.InputParameters, calcs [domain.ScenarioCount]ScenarioCalculator) ([]domain.ScenarioResult, domain.DerivedParameters) {
	derived := Derive(in)

	results := make([]domain.ScenarioResult, 0, domain.ScenarioCount)
	for i, calc := range calcs {
		results = append(results, runScenario(domain.Scenario(i), calc, in, derived))
	}

	backfillNetVsAllCash(results)
	return results, derived
}

// runScenario isolates a calculator so that a failure is reported on its own
// result and the other scenarios are still computed.
func runScenario(
	scenario domain.Scenario,
	calc ScenarioCalculator,
	in domain.InputParameters,
	derived domain.DerivedParameters,
) (result domain.ScenarioResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: scenario %s failed: %v", scenario, r)
			result = domain.ScenarioResult{
				Scenario: scenario,
				Error:    fmt.Sprint(r),
			}
		}
	}()

	result = calc(in, derived)
	result.Scenario = scenario
	return result
}

func backfillNetVsAllCash(results []domain.ScenarioResult) {
	base := results[domain.ScenarioAllCash]
	if base.Failed() {
		return
	}
	for i := range results {
		if results[i].Failed() {
			continue
		}
		results[i].NetVsAllCash = results[i].TotalNetWorth - base.TotalNetWorth
	}
	results[domain.ScenarioAllCash].NetVsAllCash = 0
}

// Rank returns the indices of the highest and lowest total net worth in a
// single pass. Ties go to the lowest index. Failed results are skipped; if
// every result failed both indices are 0.
func Rank(results []domain.ScenarioResult) (best, worst int) {
	best, worst = -1, -1
	for i, r := range results {
		if r.Failed() {
			continue
		}
		if best < 0 || r.TotalNetWorth > results[best].TotalNetWorth {
			best = i
		}
		if worst < 0 || r.TotalNetWorth < results[worst].TotalNetWorth {
			worst = i
		}
	}
	if best < 0 {
		return 0, 0
	}
	return best, worst
}
