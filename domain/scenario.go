package domain

import (
	"fmt"
	"time"
)

// Scenario identifies one acquisition strategy. The numeric value is the
// position of the scenario in an evaluation.
type Scenario int

const (
	ScenarioAllCash Scenario = iota
	ScenarioMortgage
	ScenarioSyntheticLeverage
	ScenarioSecuritiesLoan
)

// ScenarioCount is the number of strategies compared in one evaluation.
const ScenarioCount = 4

var scenarioNames = [ScenarioCount]string{
	"all_cash",
	"mortgage_80",
	"mortgage_synthetic_leverage",
	"securities_loan",
}

func (s Scenario) String() string {
	if s < 0 || int(s) >= ScenarioCount {
		return "unknown"
	}
	return scenarioNames[s]
}

// MarshalText makes scenarios readable in JSON.
func (s Scenario) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a scenario name.
func (s *Scenario) UnmarshalText(text []byte) error {
	for i, name := range scenarioNames {
		if name == string(text) {
			*s = Scenario(i)
			return nil
		}
	}
	return fmt.Errorf("unknown scenario %q", text)
}

// Scenarios returns every scenario in evaluation order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioAllCash,
		ScenarioMortgage,
		ScenarioSyntheticLeverage,
		ScenarioSecuritiesLoan,
	}
}

type ScenarioResult struct {
	Scenario          Scenario `json:"scenario"`
	DownPayment       float64  `json:"down_payment"`
	UpfrontCost       float64  `json:"upfront_cost"`
	AnnualDebtService float64  `json:"annual_debt_service"`
	TotalInterestCost float64  `json:"total_interest_cost"`
	PortfolioGrowth   float64  `json:"portfolio_growth"`
	OwnershipCosts    float64  `json:"ownership_costs"`
	TaxSavings        float64  `json:"tax_savings"`
	HomeSaleProceeds  float64  `json:"home_sale_proceeds"`
	TotalNetWorth     float64  `json:"total_net_worth"`
	NetVsAllCash      float64  `json:"net_vs_all_cash"`

	// SyntheticLeverageAmount is only set by the synthetic leverage scenario.
	SyntheticLeverageAmount float64 `json:"synthetic_leverage_amount,omitempty"`

	SecuritiesLoan *SecuritiesLoanBreakdown `json:"securities_loan,omitempty"`

	// Error is set when the calculator failed; the numeric fields are then zero.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the calculator for this scenario failed.
func (r ScenarioResult) Failed() bool { return r.Error != "" }

// SecuritiesLoanBreakdown details the securities-backed lending scenario.
type SecuritiesLoanBreakdown struct {
	LoanAmount            float64 `json:"loan_amount"`
	PledgedSecurities     float64 `json:"pledged_securities"`
	AnnualInterest        float64 `json:"annual_interest"`
	AnnualOpportunityCost float64 `json:"annual_opportunity_cost"`
	BlendedAltReturn      float64 `json:"blended_alt_return"`
}

// Evaluation is the outcome of running every scenario against one parameter set.
type Evaluation struct {
	ID          string            `json:"id,omitempty"`
	CreatedAt   time.Time         `json:"created_at,omitzero"`
	Input       InputParameters   `json:"input"`
	Derived     DerivedParameters `json:"derived"`
	Results     []ScenarioResult  `json:"results"`
	BestIndex   int               `json:"best_index"`
	WorstIndex  int               `json:"worst_index"`
	Explanation string            `json:"explanation,omitempty"`
}

// Best returns the scenario with the highest total net worth.
func (e Evaluation) Best() ScenarioResult { return e.Results[e.BestIndex] }

// Worst returns the scenario with the lowest total net worth.
func (e Evaluation) Worst() ScenarioResult { return e.Results[e.WorstIndex] }
