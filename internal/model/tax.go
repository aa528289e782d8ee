package model

import "github.com/shopspring/decimal"

// FilingStatus selects the federal bracket table and standard deduction.
type FilingStatus string

const (
	FilingSingle               FilingStatus = "SINGLE"
	FilingMarriedFilingJointly FilingStatus = "MARRIED_FILING_JOINTLY"
	FilingHeadOfHousehold      FilingStatus = "HEAD_OF_HOUSEHOLD"
)

// TaxBracket is one progressive bracket. UpperBound is nil for the top
// bracket, which taxes everything above its lower bound.
type TaxBracket struct {
	LowerBound decimal.Decimal  `json:"lower_bound" yaml:"lower_bound"`
	UpperBound *decimal.Decimal `json:"upper_bound" yaml:"upper_bound"`
	Rate       decimal.Decimal  `json:"rate" yaml:"rate"`
}

// Federal tax treatment for offer comparisons.
const (
	FederalModeFlat     = "FLAT"
	FederalModeBrackets = "BRACKETS"
)

// BonusTreatment controls how one-time bonuses and travel reimbursement
// enter annual figures.
const (
	BonusOnce     = "ONCE"
	BonusProrated = "PRORATED"
)

// TaxSettings parameterizes an offer comparison run.
type TaxSettings struct {
	TaxHomeState       string          `json:"tax_home_state"`
	StateRate          decimal.Decimal `json:"state_rate"`
	FederalMode        string          `json:"federal_mode"`
	FederalFlatRate    decimal.Decimal `json:"federal_flat_rate"`
	FilingStatus       FilingStatus    `json:"filing_status,omitempty"`
	WeeksWorkedPerYear int             `json:"weeks_worked_per_year"`
	OvertimeThreshold  decimal.Decimal `json:"overtime_threshold_hours"`
	BonusTreatment     string          `json:"bonus_treatment,omitempty"`
}
