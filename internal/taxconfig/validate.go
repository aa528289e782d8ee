package taxconfig

import "github.com/kojjob/TravelNurse-sub001/internal/model"

var requiredStatuses = []model.FilingStatus{
	model.FilingSingle,
	model.FilingMarriedFilingJointly,
	model.FilingHeadOfHousehold,
}

// Validate checks the table invariants: every filing status has an
// ascending, contiguous, non-overlapping bracket list starting at zero
// with exactly one unbounded top bracket, plus a positive standard
// deduction. Any violation is a ConfigurationError.
func (t *TaxTable) Validate() error {
	if t.TaxYear <= 0 {
		return configErrorf("tax_year must be positive, got %d", t.TaxYear)
	}

	for _, status := range requiredStatuses {
		brackets, ok := t.Brackets[status]
		if !ok || len(brackets) == 0 {
			return configErrorf("missing bracket table for %s", status)
		}

		if !brackets[0].LowerBound.IsZero() {
			return configErrorf("%s: first bracket must start at 0, got %s", status, brackets[0].LowerBound)
		}

		for i, b := range brackets {
			if b.Rate.IsNegative() {
				return configErrorf("%s bracket %d: negative rate %s", status, i, b.Rate)
			}
			last := i == len(brackets)-1
			if last {
				if b.UpperBound != nil {
					return configErrorf("%s: top bracket must be unbounded", status)
				}
				continue
			}
			if b.UpperBound == nil {
				return configErrorf("%s bracket %d: only the top bracket may be unbounded", status, i)
			}
			if !b.UpperBound.GreaterThan(b.LowerBound) {
				return configErrorf("%s bracket %d: upper bound %s does not exceed lower bound %s",
					status, i, b.UpperBound, b.LowerBound)
			}
			// Contiguity: the next bracket picks up exactly where this one ends.
			if !brackets[i+1].LowerBound.Equal(*b.UpperBound) {
				return configErrorf("%s bracket %d: gap or overlap at %s (next starts at %s)",
					status, i, b.UpperBound, brackets[i+1].LowerBound)
			}
		}

		deduction, ok := t.StandardDeductions[status]
		if !ok {
			return configErrorf("missing standard deduction for %s", status)
		}
		if !deduction.IsPositive() {
			return configErrorf("%s: standard deduction must be positive, got %s", status, deduction)
		}
	}

	for state := range t.NoIncomeTaxStates {
		if len(state) != 2 {
			return configErrorf("no-income-tax state %q is not a two-letter code", state)
		}
	}

	return nil
}
