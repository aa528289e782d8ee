package model

import "github.com/shopspring/decimal"

// JobOffer is one contract offer as entered by the caller. Offers are
// immutable once compared; an edit replaces the record wholesale.
type JobOffer struct {
	OfferID              string           `json:"offer_id"`
	Name                 string           `json:"name"`
	FacilityName         string           `json:"facility_name,omitempty"`
	Location             string           `json:"location,omitempty"`
	HourlyRate           decimal.Decimal  `json:"hourly_rate"`
	HoursPerWeek         decimal.Decimal  `json:"hours_per_week"`
	HousingStipendWeekly decimal.Decimal  `json:"housing_stipend_weekly"`
	MealsStipendWeekly   decimal.Decimal  `json:"meals_stipend_weekly"`
	TravelReimbursement  decimal.Decimal  `json:"travel_reimbursement"`
	OvertimeRate         *decimal.Decimal `json:"overtime_rate,omitempty"`
	SignOnBonus          *decimal.Decimal `json:"sign_on_bonus,omitempty"`
	CompletionBonus      *decimal.Decimal `json:"completion_bonus,omitempty"`
	ContractWeeks        int              `json:"contract_weeks"`
	State                string           `json:"state"`
}

// OfferComparisonResult is derived per offer on every comparison run,
// never stored.
type OfferComparisonResult struct {
	OfferID              string          `json:"offer_id"`
	Rank                 int             `json:"rank"`
	WeeklyTaxable        decimal.Decimal `json:"weekly_taxable"`
	WeeklyNonTaxable     decimal.Decimal `json:"weekly_non_taxable"`
	WeeklyGross          decimal.Decimal `json:"weekly_gross"`
	WeeklyTakeHome       decimal.Decimal `json:"weekly_take_home"`
	BlendedRate          decimal.Decimal `json:"blended_rate"`
	BlendedRateDefined   bool            `json:"blended_rate_defined"`
	NonTaxablePercentage decimal.Decimal `json:"non_taxable_percentage"`
	EffectiveTaxRate     decimal.Decimal `json:"effective_tax_rate"`
	AnnualGross          decimal.Decimal `json:"annual_gross"`
	AnnualTakeHome       decimal.Decimal `json:"annual_take_home"`
	GSACompliant         bool            `json:"gsa_compliant"`
}
