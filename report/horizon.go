package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"homebuy-agent/domain"
)

// WriteHorizon renders a holding-period sweep, one row per horizon.
func WriteHorizon(w io.Writer, h domain.HorizonResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "Years\tBest\t")
	for _, s := range domain.Scenarios()[1:] {
		fmt.Fprintf(tw, "%s\t", Title(s))
	}
	fmt.Fprintln(tw)

	for _, p := range h.Points {
		fmt.Fprintf(tw, "%d\t%s\t", p.HoldingPeriod, Title(p.Best))
		for _, delta := range p.NetVsAllCash[1:] {
			fmt.Fprintf(tw, "%s\t", SignedMoney(delta))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, s := range domain.Scenarios()[1:] {
		if years, ok := h.Breakeven[s]; ok {
			fmt.Fprintf(w, "%s beats all cash from %d years.\n", Title(s), years)
		} else {
			fmt.Fprintf(w, "%s never beats all cash in this range.\n", Title(s))
		}
	}
	return nil
}
