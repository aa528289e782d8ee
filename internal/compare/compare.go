// Package compare normalizes heterogeneous job offers into comparable
// weekly and annual take-home figures and ranks them. Input clamps
// (negative amounts, zero hours) are reported as WARNING messages rather
// than errors; the only hard failure is a broken tax table.
package compare

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kojjob/TravelNurse-sub001/internal/gsa"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
	"github.com/kojjob/TravelNurse-sub001/internal/taxconfig"
	"github.com/kojjob/TravelNurse-sub001/internal/taxengine"
)

const defaultOvertimeThresholdHours = 40

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Compare computes a ranked result per offer. Results are ordered by
// descending annual take-home; ties keep the original input order, so
// the ranking is deterministic for identical inputs.
func Compare(offers []model.JobOffer, settings model.TaxSettings, table *taxconfig.TaxTable) ([]model.OfferComparisonResult, []model.CalculationMessage, error) {
	var msgs []model.CalculationMessage

	results := make([]model.OfferComparisonResult, 0, len(offers))
	for _, offer := range offers {
		res, offerMsgs, err := evaluate(offer, settings, table)
		if err != nil {
			return nil, nil, err
		}
		msgs = append(msgs, offerMsgs...)
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AnnualTakeHome.GreaterThan(results[j].AnnualTakeHome)
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, msgs, nil
}

func evaluate(offer model.JobOffer, settings model.TaxSettings, table *taxconfig.TaxTable) (model.OfferComparisonResult, []model.CalculationMessage, error) {
	var msgs []model.CalculationMessage
	clamp := func(v decimal.Decimal, field string) decimal.Decimal {
		if v.IsNegative() {
			msgs = append(msgs, model.CalculationMessage{
				Level:   model.LevelWarning,
				Code:    "NEGATIVE_AMOUNT_CLAMPED",
				Message: fmt.Sprintf("%s for offer %s clamped to 0", field, offer.OfferID),
			})
			return decimal.Zero
		}
		return v
	}

	hourlyRate := clamp(offer.HourlyRate, "hourly_rate")
	hours := clamp(offer.HoursPerWeek, "hours_per_week")
	housing := clamp(offer.HousingStipendWeekly, "housing_stipend_weekly")
	meals := clamp(offer.MealsStipendWeekly, "meals_stipend_weekly")
	travel := clamp(offer.TravelReimbursement, "travel_reimbursement")

	threshold := settings.OvertimeThreshold
	if !threshold.IsPositive() {
		threshold = decimal.NewFromInt(defaultOvertimeThresholdHours)
	}

	// Base pay covers all hours unless an overtime rate applies, in which
	// case hours beyond the threshold are paid at that rate instead.
	weeklyTaxable := hourlyRate.Mul(hours)
	if offer.OvertimeRate != nil && hours.GreaterThan(threshold) {
		otRate := clamp(*offer.OvertimeRate, "overtime_rate")
		otHours := hours.Sub(threshold)
		weeklyTaxable = hourlyRate.Mul(threshold).Add(otRate.Mul(otHours))
	}

	weeklyNonTaxable := housing.Add(meals)
	weeklyGross := weeklyTaxable.Add(weeklyNonTaxable)

	blendedRate := decimal.Zero
	blendedDefined := hours.IsPositive()
	if blendedDefined {
		blendedRate = weeklyGross.Div(hours)
	} else {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "ZERO_HOURS",
			Message: fmt.Sprintf("offer %s has no hours per week; blended rate is undefined", offer.OfferID),
		})
	}

	nonTaxablePct := decimal.Zero
	if weeklyGross.IsPositive() {
		nonTaxablePct = weeklyNonTaxable.Div(weeklyGross).Mul(hundred)
		if nonTaxablePct.IsNegative() {
			nonTaxablePct = decimal.Zero
		}
		if nonTaxablePct.GreaterThan(hundred) {
			nonTaxablePct = hundred
		}
	}

	totalRate, err := totalTaxRate(weeklyTaxable, settings, table)
	if err != nil {
		return model.OfferComparisonResult{}, nil, err
	}

	weeklyTakeHome := weeklyTaxable.Mul(one.Sub(totalRate)).Add(weeklyNonTaxable)
	if weeklyTakeHome.IsNegative() {
		weeklyTakeHome = decimal.Zero
	}

	weeks := decimal.NewFromInt(int64(settings.WeeksWorkedPerYear))
	if weeks.IsNegative() {
		weeks = decimal.Zero
	}

	oneTime := travel
	if offer.SignOnBonus != nil {
		oneTime = oneTime.Add(clamp(*offer.SignOnBonus, "sign_on_bonus"))
	}
	if offer.CompletionBonus != nil {
		oneTime = oneTime.Add(clamp(*offer.CompletionBonus, "completion_bonus"))
	}
	// Prorated treatment spreads one-time amounts over the contract and
	// scales by weeks worked; without a contract length it degrades to
	// the once treatment.
	if settings.BonusTreatment == model.BonusProrated && offer.ContractWeeks > 0 {
		oneTime = oneTime.Div(decimal.NewFromInt(int64(offer.ContractWeeks))).Mul(weeks)
	}

	annualGross := weeklyGross.Mul(weeks).Add(oneTime)
	annualTakeHome := weeklyTakeHome.Mul(weeks).Add(oneTime)

	gsaCompliant := weeklyNonTaxable.LessThanOrEqual(gsa.WeeklyCeiling(offer.Location))
	if !gsaCompliant {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "GSA_LIMIT_EXCEEDED",
			Message: fmt.Sprintf("offer %s weekly stipends %s exceed the GSA per-diem ceiling", offer.OfferID, weeklyNonTaxable.Round(2)),
		})
	}

	return model.OfferComparisonResult{
		OfferID:              offer.OfferID,
		WeeklyTaxable:        weeklyTaxable.Round(2),
		WeeklyNonTaxable:     weeklyNonTaxable.Round(2),
		WeeklyGross:          weeklyGross.Round(2),
		WeeklyTakeHome:       weeklyTakeHome.Round(2),
		BlendedRate:          blendedRate.Round(2),
		BlendedRateDefined:   blendedDefined,
		NonTaxablePercentage: nonTaxablePct.Round(2),
		EffectiveTaxRate:     totalRate.Round(4),
		AnnualGross:          annualGross.Round(2),
		AnnualTakeHome:       annualTakeHome.Round(2),
		GSACompliant:         gsaCompliant,
	}, msgs, nil
}

// totalTaxRate combines the state and federal rates applied to the
// taxable portion of weekly pay. State tax is zero when the tax home is
// in a no-income-tax state.
func totalTaxRate(weeklyTaxable decimal.Decimal, settings model.TaxSettings, table *taxconfig.TaxTable) (decimal.Decimal, error) {
	stateRate := decimal.Zero
	if !table.IsNoIncomeTaxState(settings.TaxHomeState) {
		stateRate = settings.StateRate
	}

	switch settings.FederalMode {
	case model.FederalModeBrackets:
		weeks := int64(settings.WeeksWorkedPerYear)
		if weeks <= 0 {
			weeks = 0
		}
		annualTaxable := weeklyTaxable.Mul(decimal.NewFromInt(weeks))
		deduction, err := table.StandardDeduction(settings.FilingStatus)
		if err != nil {
			return decimal.Zero, err
		}
		fedRate, err := taxengine.EffectiveRate(table, taxengine.TaxableIncome(annualTaxable, deduction), settings.FilingStatus)
		if err != nil {
			return decimal.Zero, err
		}
		return stateRate.Add(fedRate), nil
	default:
		return stateRate.Add(settings.FederalFlatRate), nil
	}
}
