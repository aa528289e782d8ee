// Package taxengine computes federal tax liability from the progressive
// bracket tables. All functions are pure and total: negative income is
// treated as zero, never an error.
package taxengine

import (
	"github.com/shopspring/decimal"

	"github.com/kojjob/TravelNurse-sub001/internal/model"
	"github.com/kojjob/TravelNurse-sub001/internal/taxconfig"
)

// ComputeTax walks the ascending bracket table for the filing status and
// sums portion*rate per bracket. The result is rounded to the cent,
// half up. The only possible error is a missing bracket table.
func ComputeTax(table *taxconfig.TaxTable, taxableIncome decimal.Decimal, status model.FilingStatus) (decimal.Decimal, error) {
	brackets, err := table.BracketsFor(status)
	if err != nil {
		return decimal.Zero, err
	}

	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	tax := decimal.Zero
	for _, b := range brackets {
		if taxableIncome.LessThanOrEqual(b.LowerBound) {
			break
		}
		// The top bracket has no upper bound: everything above its lower
		// bound is taxed at its rate.
		taxedUpTo := taxableIncome
		if b.UpperBound != nil && b.UpperBound.LessThan(taxedUpTo) {
			taxedUpTo = *b.UpperBound
		}
		portion := taxedUpTo.Sub(b.LowerBound)
		if portion.IsNegative() {
			continue
		}
		tax = tax.Add(portion.Mul(b.Rate))
	}

	return tax.Round(2), nil
}

// EffectiveRate is tax divided by income, zero for zero income. It never
// exceeds the table's top marginal rate.
func EffectiveRate(table *taxconfig.TaxTable, taxableIncome decimal.Decimal, status model.FilingStatus) (decimal.Decimal, error) {
	if !taxableIncome.IsPositive() {
		return decimal.Zero, nil
	}
	tax, err := ComputeTax(table, taxableIncome, status)
	if err != nil {
		return decimal.Zero, err
	}
	return tax.Div(taxableIncome), nil
}

// TaxableIncome applies a deduction to gross income, floored at zero.
func TaxableIncome(gross, deduction decimal.Decimal) decimal.Decimal {
	taxable := gross.Sub(deduction)
	if taxable.IsNegative() {
		return decimal.Zero
	}
	return taxable
}
