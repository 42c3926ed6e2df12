package domain

type HorizonInput struct {
	Parameters PercentInput `json:"parameters"`
	MinYears   int          `json:"min_years"`
	MaxYears   int          `json:"max_years"`
}

type HorizonPoint struct {
	HoldingPeriod int                    `json:"holding_period"`
	Best          Scenario               `json:"best"`
	Worst         Scenario               `json:"worst"`
	NetVsAllCash  [ScenarioCount]float64 `json:"net_vs_all_cash"`
	NetWorth      [ScenarioCount]float64 `json:"net_worth"`
}

type HorizonResult struct {
	Points []HorizonPoint `json:"points"`
	// Breakeven maps a financed scenario to the first holding period at which
	// it ends ahead of all-cash. Scenarios that never do are absent.
	Breakeven map[Scenario]int `json:"breakeven"`
}
