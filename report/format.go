// Package report renders evaluations as plain text.
package report

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code used for every amount.
const Currency = money.USD

// NotANumber is printed in place of NaN and infinite amounts.
const NotANumber = "n/a"

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func toCents(v float64) int64 {
	return decimal.NewFromFloat(v).Round(2).Shift(2).IntPart()
}

// Money formats an amount rounded to the cent, e.g. "$1,850,000.00".
func Money(v float64) string {
	if !finite(v) {
		return NotANumber
	}
	return money.New(toCents(v), Currency).Display()
}

// SignedMoney is Money with an explicit sign, and "-" for zero.
func SignedMoney(v float64) string {
	if !finite(v) {
		return NotANumber
	}
	cents := toCents(v)
	switch {
	case cents == 0:
		return "-"
	case cents > 0:
		return "+" + money.New(cents, Currency).Display()
	}
	return money.New(cents, Currency).Display()
}

// Percent formats a fraction as a percentage with two decimals.
func Percent(fraction float64) string {
	if !finite(fraction) {
		return NotANumber
	}
	return fmt.Sprintf("%s%%", decimal.NewFromFloat(fraction).Shift(2).StringFixed(2))
}
