package domain

// PercentInput is the parameter set as it arrives from callers: rates are
// percentages (6.9 means 6.9%), amounts are currency units.
type PercentInput struct {
	HomePrice        float64 `json:"home_price"`
	ClosingCostRate  float64 `json:"closing_cost_rate"`
	PropertyTaxRate  float64 `json:"property_tax_rate"`
	AnnualInsurance  float64 `json:"annual_insurance"`
	MaintenanceRate  float64 `json:"maintenance_rate"`
	AppreciationRate float64 `json:"appreciation_rate"`
	HoldingPeriod    int     `json:"holding_period"`

	MortgageRate   float64 `json:"mortgage_rate"`
	DeductionLimit float64 `json:"deduction_limit"`
	ReferenceRate  float64 `json:"reference_rate"`
	InvestReturn   float64 `json:"invest_return"`

	OrdinaryTaxRate    float64 `json:"ordinary_tax_rate"`
	CapitalGainsRate   float64 `json:"capital_gains_rate"`
	SellingCostRate    float64 `json:"selling_cost_rate"`
	SecuritiesLTVRatio float64 `json:"securities_ltv"`

	PrivateEquityReturn float64 `json:"private_equity_return"`
	HedgeFundReturn     float64 `json:"hedge_fund_return"`
	PrivateCreditReturn float64 `json:"private_credit_return"`
	RealEstateReturn    float64 `json:"real_estate_return"`

	PrivateEquityWeight float64 `json:"private_equity_weight"`
	HedgeFundWeight     float64 `json:"hedge_fund_weight"`
	PrivateCreditWeight float64 `json:"private_credit_weight"`
	RealEstateWeight    float64 `json:"real_estate_weight"`
}

// InputParameters is the normalized parameter set read by the engine. Every
// rate is a decimal fraction (0.069 for 6.9%). Values are never mutated once
// built.
type InputParameters struct {
	HomePrice        float64 `json:"home_price"`
	ClosingCostRate  float64 `json:"closing_cost_rate"`
	PropertyTaxRate  float64 `json:"property_tax_rate"`
	AnnualInsurance  float64 `json:"annual_insurance"`
	MaintenanceRate  float64 `json:"maintenance_rate"`
	AppreciationRate float64 `json:"appreciation_rate"`
	HoldingPeriod    int     `json:"holding_period"`

	MortgageRate   float64 `json:"mortgage_rate"`
	DeductionLimit float64 `json:"deduction_limit"`
	ReferenceRate  float64 `json:"reference_rate"`
	InvestReturn   float64 `json:"invest_return"`

	OrdinaryTaxRate    float64 `json:"ordinary_tax_rate"`
	CapitalGainsRate   float64 `json:"capital_gains_rate"`
	SellingCostRate    float64 `json:"selling_cost_rate"`
	SecuritiesLTVRatio float64 `json:"securities_ltv"`

	AltReturns AltAllocation `json:"alt_returns"`
	AltWeights AltAllocation `json:"alt_weights"`
}

// AltAllocation holds one figure per alternative asset class.
type AltAllocation struct {
	PrivateEquity float64 `json:"private_equity"`
	HedgeFund     float64 `json:"hedge_fund"`
	PrivateCredit float64 `json:"private_credit"`
	RealEstate    float64 `json:"real_estate"`
}

// DerivedParameters are computed once per InputParameters.
type DerivedParameters struct {
	SyntheticLeverageRate float64 `json:"synthetic_leverage_rate"`
	SecuritiesLoanRate    float64 `json:"securities_loan_rate"`
	BlendedAltReturn      float64 `json:"blended_alt_return"`
}

func pct(v float64) float64 { return v / 100 }

// Normalize converts the percentage fields to fractions. It is the only
// conversion between the two records.
func (p PercentInput) Normalize() InputParameters {
	return InputParameters{
		HomePrice:        p.HomePrice,
		ClosingCostRate:  pct(p.ClosingCostRate),
		PropertyTaxRate:  pct(p.PropertyTaxRate),
		AnnualInsurance:  p.AnnualInsurance,
		MaintenanceRate:  pct(p.MaintenanceRate),
		AppreciationRate: pct(p.AppreciationRate),
		HoldingPeriod:    p.HoldingPeriod,

		MortgageRate:   pct(p.MortgageRate),
		DeductionLimit: p.DeductionLimit,
		ReferenceRate:  pct(p.ReferenceRate),
		InvestReturn:   pct(p.InvestReturn),

		OrdinaryTaxRate:    pct(p.OrdinaryTaxRate),
		CapitalGainsRate:   pct(p.CapitalGainsRate),
		SellingCostRate:    pct(p.SellingCostRate),
		SecuritiesLTVRatio: pct(p.SecuritiesLTVRatio),

		AltReturns: AltAllocation{
			PrivateEquity: pct(p.PrivateEquityReturn),
			HedgeFund:     pct(p.HedgeFundReturn),
			PrivateCredit: pct(p.PrivateCreditReturn),
			RealEstate:    pct(p.RealEstateReturn),
		},
		AltWeights: AltAllocation{
			PrivateEquity: pct(p.PrivateEquityWeight),
			HedgeFund:     pct(p.HedgeFundWeight),
			PrivateCredit: pct(p.PrivateCreditWeight),
			RealEstate:    pct(p.RealEstateWeight),
		},
	}
}

// Floats lists every numeric field, used for finiteness checks.
func (p PercentInput) Floats() []float64 {
	return []float64{
		p.HomePrice, p.ClosingCostRate, p.PropertyTaxRate, p.AnnualInsurance,
		p.MaintenanceRate, p.AppreciationRate, p.MortgageRate, p.DeductionLimit,
		p.ReferenceRate, p.InvestReturn, p.OrdinaryTaxRate, p.CapitalGainsRate,
		p.SellingCostRate, p.SecuritiesLTVRatio,
		p.PrivateEquityReturn, p.HedgeFundReturn, p.PrivateCreditReturn, p.RealEstateReturn,
		p.PrivateEquityWeight, p.HedgeFundWeight, p.PrivateCreditWeight, p.RealEstateWeight,
	}
}

// DefaultPercentInput returns the reference scenario used when a caller has
// no parameters of its own.
func DefaultPercentInput() PercentInput {
	return PercentInput{
		HomePrice:        1_850_000,
		ClosingCostRate:  2,
		PropertyTaxRate:  1.2,
		AnnualInsurance:  3_000,
		MaintenanceRate:  1,
		AppreciationRate: 4,
		HoldingPeriod:    10,

		MortgageRate:   6.9,
		DeductionLimit: 750_000,
		ReferenceRate:  4.33,
		InvestReturn:   7,

		OrdinaryTaxRate:    37,
		CapitalGainsRate:   20,
		SellingCostRate:    6,
		SecuritiesLTVRatio: 40,

		PrivateEquityReturn: 8.9,
		HedgeFundReturn:     8,
		PrivateCreditReturn: 10,
		RealEstateReturn:    9.5,

		PrivateEquityWeight: 30,
		HedgeFundWeight:     25,
		PrivateCreditWeight: 25,
		RealEstateWeight:    20,
	}
}
