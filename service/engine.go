package service

import (
	"math"

	"homebuy-agent/domain"
)

// Payment returns the fixed periodic payment that amortizes pv over periods
// at the given periodic rate. The result is negative for a positive pv.
//
// periods == 0 returns 0. A rate for which (1+rate)^periods == 1 other than
// rate == 0 is not guarded here; EvaluationService rejects such mortgage rates.
func Payment(rate float64, periods int, pv float64) float64 {
	if periods == 0 {
		return 0
	}
	n := float64(periods)
	if rate == 0 {
		return -pv / n
	}
	growth := math.Pow(1+rate, n)
	return -(pv * rate * growth) / (growth - 1)
}

// AnnualOwnershipCost is property tax, insurance and maintenance for one year.
func AnnualOwnershipCost(in domain.InputParameters) float64 {
	return in.HomePrice*in.PropertyTaxRate + in.AnnualInsurance + in.HomePrice*in.MaintenanceRate
}

// OwnershipCosts repeats the annual cost for every year held, without inflation.
func OwnershipCosts(in domain.InputParameters) float64 {
	return AnnualOwnershipCost(in) * float64(in.HoldingPeriod)
}

// SaleValue compounds the price at the appreciation rate over the holding period.
func SaleValue(in domain.InputParameters) float64 {
	return in.HomePrice * math.Pow(1+in.AppreciationRate, float64(in.HoldingPeriod))
}

// SaleProceeds is the sale value net of selling costs.
func SaleProceeds(in domain.InputParameters) float64 {
	return SaleValue(in) * (1 - in.SellingCostRate)
}

// BlendedAltReturn weights the alternative asset returns. Weights are used
// as given, they are not required to sum to one.
func BlendedAltReturn(returns, weights domain.AltAllocation) float64 {
	return weights.PrivateEquity*returns.PrivateEquity +
		weights.HedgeFund*returns.HedgeFund +
		weights.PrivateCredit*returns.PrivateCredit +
		weights.RealEstate*returns.RealEstate
}

// Derive computes the financing rates and blended return for one parameter set.
func Derive(in domain.InputParameters) domain.DerivedParameters {
	return domain.DerivedParameters{
		SyntheticLeverageRate: in.ReferenceRate + SyntheticLeverageSpread,
		SecuritiesLoanRate:    in.ReferenceRate + SecuritiesLoanSpread,
		BlendedAltReturn:      BlendedAltReturn(in.AltReturns, in.AltWeights),
	}
}

// portfolioGrowth is the gain on cash invested for years at rate. Non
// positive amounts grow nothing.
func portfolioGrowth(amount, rate float64, years int) float64 {
	if amount <= 0 {
		return 0
	}
	return amount * (math.Pow(1+rate, float64(years)) - 1)
}

// amortizedLoan is the debt service of a mortgage fully repaid over the
// holding period with monthly payments.
type amortizedLoan struct {
	annualDebtService float64
	totalInterest     float64
}

func amortize(principal, annualRate float64, years int) amortizedLoan {
	periods := years * MonthsPerYear
	if periods == 0 {
		return amortizedLoan{}
	}
	monthly := -Payment(annualRate/MonthsPerYear, periods, principal)
	annual := monthly * MonthsPerYear
	return amortizedLoan{
		annualDebtService: annual,
		totalInterest:     annual*float64(years) - principal,
	}
}
