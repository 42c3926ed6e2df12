package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homebuy-agent/domain"
)

func defaults() (domain.InputParameters, domain.DerivedParameters) {
	in := domain.DefaultPercentInput().Normalize()
	return in, Derive(in)
}

func assertNetWorthIdentity(t *testing.T, r domain.ScenarioResult) {
	t.Helper()
	want := r.PortfolioGrowth + r.HomeSaleProceeds - r.TotalInterestCost - r.OwnershipCosts + r.TaxSavings
	assert.InDelta(t, want, r.TotalNetWorth, 1e-6, "net worth identity for %s", r.Scenario)
}

func TestCalculateAllCash(t *testing.T) {
	in, d := defaults()
	r := CalculateAllCash(in, d)

	assert.Equal(t, in.HomePrice, r.DownPayment)
	assert.InDelta(t, 1_887_000, r.UpfrontCost, 1e-6)
	assert.Zero(t, r.AnnualDebtService)
	assert.Zero(t, r.TotalInterestCost)
	assert.Zero(t, r.PortfolioGrowth)
	assert.Zero(t, r.TaxSavings)
	assert.InDelta(t, 2_137_144.81, r.TotalNetWorth, 0.01)
	assert.Nil(t, r.SecuritiesLoan)
	assertNetWorthIdentity(t, r)
}

func TestCalculateMortgage(t *testing.T) {
	in, d := defaults()
	r := CalculateMortgage(in, d)

	assert.InDelta(t, 370_000, r.DownPayment, 1e-6)
	assert.InDelta(t, 407_000, r.UpfrontCost, 1e-6)
	assert.InDelta(t, 205_294.50, r.AnnualDebtService, 0.01)
	assert.InDelta(t, 572_944.96, r.TotalInterestCost, 0.01)
	assert.InDelta(t, 1_395_599.41, r.PortfolioGrowth, 0.01)
	assert.InDelta(t, 95_737.50, r.TaxSavings, 1e-6)
	assert.InDelta(t, 3_055_536.76, r.TotalNetWorth, 0.01)
	assert.Nil(t, r.SecuritiesLoan)
	assertNetWorthIdentity(t, r)
}

func TestCalculateMortgage_ZeroRateIsStraightLine(t *testing.T) {
	in, d := defaults()
	in.MortgageRate = 0

	r := CalculateMortgage(in, d)
	principal := in.HomePrice * FinancedShare
	months := float64(in.HoldingPeriod * 12)

	assert.InDelta(t, principal/months*12, r.AnnualDebtService, 1e-6)
	assert.InDelta(t, 0, r.TotalInterestCost, 1e-6)
	assert.Zero(t, r.TaxSavings)
}

func TestCalculateMortgage_DeductionCapLimitsTaxSavings(t *testing.T) {
	in, d := defaults()
	in.DeductionLimit = 10_000_000

	r := CalculateMortgage(in, d)
	principal := in.HomePrice * FinancedShare
	want := principal * in.MortgageRate * in.OrdinaryTaxRate * float64(in.HoldingPeriod) * 0.5
	assert.InDelta(t, want, r.TaxSavings, 1e-6)
}

func TestCalculateMortgage_NegativeRemainingCashDoesNotGrow(t *testing.T) {
	in, d := defaults()
	in.ClosingCostRate = 0.9

	r := CalculateMortgage(in, d)
	assert.Zero(t, r.PortfolioGrowth)
}

func TestCalculateSyntheticLeverage(t *testing.T) {
	in, d := defaults()
	r := CalculateSyntheticLeverage(in, d)

	assert.InDelta(t, 730_000, r.SyntheticLeverageAmount, 1e-6)
	assert.InDelta(t, 139_293.37, r.AnnualDebtService, 0.01)
	assert.InDelta(t, 642_933.73, r.TotalInterestCost, 0.01)
	assert.InDelta(t, 226_195.80, r.TaxSavings, 1e-6)
	assert.InDelta(t, 3_116_006.29, r.TotalNetWorth, 0.01)
	assertNetWorthIdentity(t, r)
}

func TestCalculateSyntheticLeverage_NoSyntheticWhenCapCoversFinancing(t *testing.T) {
	base, _ := defaults()
	for _, limit := range []float64{base.HomePrice * FinancedShare, 1_500_000, 5_000_000} {
		in, d := defaults()
		in.DeductionLimit = limit

		r := CalculateSyntheticLeverage(in, d)
		assert.Equal(t, 0.0, r.SyntheticLeverageAmount, "limit %v", limit)

		// Degenerates to the plain mortgage apart from tax rounding.
		m := CalculateMortgage(in, d)
		assert.Equal(t, m.AnnualDebtService, r.AnnualDebtService)
		assert.Equal(t, m.TotalInterestCost, r.TotalInterestCost)
		assert.InDelta(t, m.TaxSavings, r.TaxSavings, 1e-6)
		assert.InDelta(t, m.TotalNetWorth, r.TotalNetWorth, 1e-6)
	}
}

func TestCalculateSyntheticLeverage_SyntheticInterestIsNotAveraged(t *testing.T) {
	in, d := defaults()
	in.DeductionLimit = 0
	in.MortgageRate = 0

	r := CalculateSyntheticLeverage(in, d)
	financed := in.HomePrice * FinancedShare

	assert.InDelta(t, financed, r.SyntheticLeverageAmount, 1e-6)
	assert.InDelta(t, financed*d.SyntheticLeverageRate*10, r.TotalInterestCost, 1e-6)
	assert.InDelta(t, financed*d.SyntheticLeverageRate*10*in.OrdinaryTaxRate, r.TaxSavings, 1e-6)
}

func TestCalculateSecuritiesLoan(t *testing.T) {
	in, d := defaults()
	r := CalculateSecuritiesLoan(in, d)
	require.NotNil(t, r.SecuritiesLoan)

	sl := r.SecuritiesLoan
	assert.Zero(t, r.DownPayment)
	assert.InDelta(t, 37_000, r.UpfrontCost, 1e-6)
	assert.InDelta(t, 1_480_000, sl.LoanAmount, 1e-6)
	assert.InDelta(t, 3_700_000, sl.PledgedSecurities, 1e-6)
	assert.InDelta(t, 78_884, sl.AnnualInterest, 1e-6)
	assert.InDelta(t, 76_405, sl.AnnualOpportunityCost, 1e-6)
	assert.InDelta(t, 0.09065, sl.BlendedAltReturn, 1e-12)

	assert.InDelta(t, 1_552_890, r.TotalInterestCost, 1e-6)
	assert.InDelta(t, 291_870.80, r.TaxSavings, 1e-6)
	// Pledged securities exceed the price: nothing left to invest.
	assert.Zero(t, r.PortfolioGrowth)
	assert.InDelta(t, 876_125.61, r.TotalNetWorth, 0.01)
	assertNetWorthIdentity(t, r)
}

func TestCalculateSecuritiesLoan_NegativeOpportunityCostReducesCost(t *testing.T) {
	in, d := defaults()
	in.InvestReturn = 0.12

	r := CalculateSecuritiesLoan(in, d)
	sl := r.SecuritiesLoan
	require.NotNil(t, sl)

	assert.Less(t, d.BlendedAltReturn, in.InvestReturn)
	assert.Negative(t, sl.AnnualOpportunityCost)
	assert.Less(t, r.TotalInterestCost, sl.AnnualInterest*float64(in.HoldingPeriod))
	assert.InDelta(t, (sl.AnnualInterest+sl.AnnualOpportunityCost)*10, r.TotalInterestCost, 1e-6)
	// Tax savings only cover the interest.
	assert.InDelta(t, sl.AnnualInterest*10*in.OrdinaryTaxRate, r.TaxSavings, 1e-6)
}

func TestCalculateSecuritiesLoan_AvailableFundsGrow(t *testing.T) {
	in, d := defaults()
	in.SecuritiesLTVRatio = 1

	r := CalculateSecuritiesLoan(in, d)
	available := in.HomePrice - in.HomePrice*FinancedShare
	assert.InDelta(t, available*(math.Pow(1.07, 10)-1), r.PortfolioGrowth, 1e-6)
}

func TestScenarios_ZeroHoldingPeriod(t *testing.T) {
	in, _ := defaults()
	in.HoldingPeriod = 0

	for _, r := range Evaluate(in) {
		assert.Equal(t, in.HomePrice*(1-in.SellingCostRate), r.HomeSaleProceeds, r.Scenario.String())
		assert.Zero(t, r.OwnershipCosts, r.Scenario.String())
		assert.Zero(t, r.TotalInterestCost, r.Scenario.String())
		assert.Zero(t, r.PortfolioGrowth, r.Scenario.String())
		assert.False(t, math.IsNaN(r.TotalNetWorth) || math.IsInf(r.TotalNetWorth, 0))
	}
}
