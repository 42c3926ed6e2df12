package service

import "homebuy-agent/domain"

// CalculateAllCash buys the home outright. There is no debt and nothing left
// to invest.
func CalculateAllCash(in domain.InputParameters, _ domain.DerivedParameters) domain.ScenarioResult {
	sale := SaleProceeds(in)
	ownership := OwnershipCosts(in)

	return domain.ScenarioResult{
		Scenario:         domain.ScenarioAllCash,
		DownPayment:      in.HomePrice,
		UpfrontCost:      in.HomePrice * (1 + in.ClosingCostRate),
		OwnershipCosts:   ownership,
		HomeSaleProceeds: sale,
		TotalNetWorth:    sale - ownership,
	}
}

// CalculateMortgage finances 80% of the price with an amortizing mortgage
// repaid over the holding period.
func CalculateMortgage(in domain.InputParameters, _ domain.DerivedParameters) domain.ScenarioResult {
	downPayment := in.HomePrice * DownPaymentShare
	closing := in.HomePrice * in.ClosingCostRate
	principal := in.HomePrice * FinancedShare

	loan := amortize(principal, in.MortgageRate, in.HoldingPeriod)

	deductible := min(principal, in.DeductionLimit)
	taxSavings := deductible * in.MortgageRate * in.OrdinaryTaxRate * float64(in.HoldingPeriod) * AverageBalanceFactor

	growth := portfolioGrowth(in.HomePrice-downPayment-closing, in.InvestReturn, in.HoldingPeriod)

	return combine(domain.ScenarioResult{
		Scenario:          domain.ScenarioMortgage,
		DownPayment:       downPayment,
		UpfrontCost:       downPayment + closing,
		AnnualDebtService: loan.annualDebtService,
		TotalInterestCost: loan.totalInterest,
		PortfolioGrowth:   growth,
		TaxSavings:        taxSavings,
	}, in)
}

// CalculateSyntheticLeverage finances 80% of the price, with the mortgage
// capped at the deduction limit and the rest borrowed interest-only at the
// synthetic leverage rate.
func CalculateSyntheticLeverage(in domain.InputParameters, d domain.DerivedParameters) domain.ScenarioResult {
	downPayment := in.HomePrice * DownPaymentShare
	closing := in.HomePrice * in.ClosingCostRate
	financed := in.HomePrice * FinancedShare

	principal := min(financed, in.DeductionLimit)
	synthetic := financed - principal
	years := float64(in.HoldingPeriod)

	loan := amortize(principal, in.MortgageRate, in.HoldingPeriod)
	syntheticAnnual := synthetic * d.SyntheticLeverageRate
	syntheticInterest := syntheticAnnual * years

	// Only the amortizing part is averaged; the synthetic balance is outstanding every year.
	mortgageInterest := principal * in.MortgageRate * years
	taxSavings := (mortgageInterest*AverageBalanceFactor + syntheticInterest) * in.OrdinaryTaxRate

	growth := portfolioGrowth(in.HomePrice-downPayment-closing, in.InvestReturn, in.HoldingPeriod)

	return combine(domain.ScenarioResult{
		Scenario:                domain.ScenarioSyntheticLeverage,
		DownPayment:             downPayment,
		UpfrontCost:             downPayment + closing,
		AnnualDebtService:       loan.annualDebtService + syntheticAnnual,
		TotalInterestCost:       loan.totalInterest + syntheticInterest,
		PortfolioGrowth:         growth,
		TaxSavings:              taxSavings,
		SyntheticLeverageAmount: synthetic,
	}, in)
}

// CalculateSecuritiesLoan borrows 80% of the price interest-only against
// pledged securities. The pledged securities earn the standard investment
// return instead of the blended alternative return, and that difference is
// counted as a cost (or a gain when negative).
//
// SecuritiesLTVRatio must be greater than zero.
func CalculateSecuritiesLoan(in domain.InputParameters, d domain.DerivedParameters) domain.ScenarioResult {
	closing := in.HomePrice * in.ClosingCostRate
	loanAmount := in.HomePrice * FinancedShare
	years := float64(in.HoldingPeriod)

	annualInterest := loanAmount * d.SecuritiesLoanRate
	pledged := loanAmount / in.SecuritiesLTVRatio
	annualOpportunity := pledged * (d.BlendedAltReturn - in.InvestReturn)
	annualCost := annualInterest + annualOpportunity

	taxSavings := annualInterest * years * in.OrdinaryTaxRate
	growth := portfolioGrowth(in.HomePrice-pledged, in.InvestReturn, in.HoldingPeriod)

	return combine(domain.ScenarioResult{
		Scenario:          domain.ScenarioSecuritiesLoan,
		UpfrontCost:       closing,
		AnnualDebtService: annualCost,
		TotalInterestCost: annualCost * years,
		PortfolioGrowth:   growth,
		TaxSavings:        taxSavings,
		SecuritiesLoan: &domain.SecuritiesLoanBreakdown{
			LoanAmount:            loanAmount,
			PledgedSecurities:     pledged,
			AnnualInterest:        annualInterest,
			AnnualOpportunityCost: annualOpportunity,
			BlendedAltReturn:      d.BlendedAltReturn,
		},
	}, in)
}

// combine fills the ownership and sale figures shared by the financed
// scenarios and computes the total net worth.
func combine(r domain.ScenarioResult, in domain.InputParameters) domain.ScenarioResult {
	r.OwnershipCosts = OwnershipCosts(in)
	r.HomeSaleProceeds = SaleProceeds(in)
	r.TotalNetWorth = r.PortfolioGrowth + r.HomeSaleProceeds - r.TotalInterestCost - r.OwnershipCosts + r.TaxSavings
	return r
}
