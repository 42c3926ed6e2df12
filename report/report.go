package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"homebuy-agent/domain"
)

var scenarioTitles = map[domain.Scenario]string{
	domain.ScenarioAllCash:           "All cash",
	domain.ScenarioMortgage:          "80% mortgage",
	domain.ScenarioSyntheticLeverage: "Mortgage + synthetic leverage",
	domain.ScenarioSecuritiesLoan:    "Securities-backed loan",
}

// Title returns the display name of a scenario.
func Title(s domain.Scenario) string {
	if t, ok := scenarioTitles[s]; ok {
		return t
	}
	return s.String()
}

// Write renders the evaluation as an aligned table followed by the derived
// rates and, when present, the securities loan breakdown.
func Write(w io.Writer, e domain.Evaluation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Scenario\tUpfront\tAnnual cost\tInterest\tPortfolio\tTax savings\tSale\tNet worth\tvs cash\t")
	for i, r := range e.Results {
		marker := ""
		switch i {
		case e.BestIndex:
			marker = " *"
		case e.WorstIndex:
			marker = " !"
		}
		if r.Failed() {
			fmt.Fprintf(tw, "%s%s\t%s\t\t\t\t\t\t\t\t\n", Title(r.Scenario), marker, "failed: "+r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			Title(r.Scenario), marker,
			Money(r.UpfrontCost),
			Money(r.AnnualDebtService),
			Money(r.TotalInterestCost),
			Money(r.PortfolioGrowth),
			Money(r.TaxSavings),
			Money(r.HomeSaleProceeds),
			Money(r.TotalNetWorth),
			SignedMoney(r.NetVsAllCash),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nSynthetic leverage rate: %s\n", Percent(e.Derived.SyntheticLeverageRate))
	fmt.Fprintf(&b, "Securities loan rate:    %s\n", Percent(e.Derived.SecuritiesLoanRate))
	fmt.Fprintf(&b, "Blended alt return:      %s\n", Percent(e.Derived.BlendedAltReturn))

	for _, r := range e.Results {
		if r.SecuritiesLoan == nil {
			continue
		}
		sl := r.SecuritiesLoan
		fmt.Fprintf(&b, "\nSecurities loan\n")
		fmt.Fprintf(&b, "  loan amount:             %s\n", Money(sl.LoanAmount))
		fmt.Fprintf(&b, "  pledged securities:      %s\n", Money(sl.PledgedSecurities))
		fmt.Fprintf(&b, "  annual interest:         %s\n", Money(sl.AnnualInterest))
		fmt.Fprintf(&b, "  annual opportunity cost: %s\n", Money(sl.AnnualOpportunityCost))
	}

	if len(e.Results) > 0 {
		fmt.Fprintf(&b, "\nBest: %s. Worst: %s.\n", Title(e.Best().Scenario), Title(e.Worst().Scenario))
	}
	if e.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Explanation)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
