// Package taxconfig holds the versioned static tax tables: federal
// brackets and standard deductions per filing status, and the set of
// states with no income tax. Tables must match the published IRS figures
// bit-exact for the configured tax year.
package taxconfig

import (
	"github.com/shopspring/decimal"

	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

// TaxTable is one tax year's static configuration.
type TaxTable struct {
	TaxYear            int
	Brackets           map[model.FilingStatus][]model.TaxBracket
	StandardDeductions map[model.FilingStatus]decimal.Decimal
	NoIncomeTaxStates  map[string]bool
}

// BracketsFor returns the ascending bracket table for a filing status.
func (t *TaxTable) BracketsFor(status model.FilingStatus) ([]model.TaxBracket, error) {
	b, ok := t.Brackets[status]
	if !ok {
		return nil, configErrorf("no bracket table for filing status %q", status)
	}
	return b, nil
}

// StandardDeduction returns the fixed deduction for a filing status.
func (t *TaxTable) StandardDeduction(status model.FilingStatus) (decimal.Decimal, error) {
	d, ok := t.StandardDeductions[status]
	if !ok {
		return decimal.Zero, configErrorf("no standard deduction for filing status %q", status)
	}
	return d, nil
}

// TopMarginalRate returns the highest rate in a status's table.
func (t *TaxTable) TopMarginalRate(status model.FilingStatus) (decimal.Decimal, error) {
	b, err := t.BracketsFor(status)
	if err != nil {
		return decimal.Zero, err
	}
	return b[len(b)-1].Rate, nil
}

// IsNoIncomeTaxState reports whether a state levies no income tax.
func (t *TaxTable) IsNoIncomeTaxState(state string) bool {
	return t.NoIncomeTaxStates[state]
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bracket(lower, upper, rate string) model.TaxBracket {
	b := model.TaxBracket{LowerBound: amt(lower), Rate: amt(rate)}
	if upper != "" {
		u := amt(upper)
		b.UpperBound = &u
	}
	return b
}

// Default2024 returns the 2024 federal table. Published figures, do not
// edit without a matching IRS revenue procedure.
func Default2024() *TaxTable {
	return &TaxTable{
		TaxYear: 2024,
		Brackets: map[model.FilingStatus][]model.TaxBracket{
			model.FilingSingle: {
				bracket("0", "11600", "0.10"),
				bracket("11600", "47150", "0.12"),
				bracket("47150", "100525", "0.22"),
				bracket("100525", "191950", "0.24"),
				bracket("191950", "243725", "0.32"),
				bracket("243725", "609350", "0.35"),
				bracket("609350", "", "0.37"),
			},
			model.FilingMarriedFilingJointly: {
				bracket("0", "23200", "0.10"),
				bracket("23200", "94300", "0.12"),
				bracket("94300", "201050", "0.22"),
				bracket("201050", "383900", "0.24"),
				bracket("383900", "487450", "0.32"),
				bracket("487450", "731200", "0.35"),
				bracket("731200", "", "0.37"),
			},
			model.FilingHeadOfHousehold: {
				bracket("0", "16550", "0.10"),
				bracket("16550", "63100", "0.12"),
				bracket("63100", "100500", "0.22"),
				bracket("100500", "191950", "0.24"),
				bracket("191950", "243700", "0.32"),
				bracket("243700", "609350", "0.35"),
				bracket("609350", "", "0.37"),
			},
		},
		StandardDeductions: map[model.FilingStatus]decimal.Decimal{
			model.FilingSingle:               amt("14600"),
			model.FilingMarriedFilingJointly: amt("29200"),
			model.FilingHeadOfHousehold:      amt("21900"),
		},
		NoIncomeTaxStates: map[string]bool{
			"AK": true, "FL": true, "NV": true, "NH": true, "SD": true,
			"TN": true, "TX": true, "WA": true, "WY": true,
		},
	}
}
