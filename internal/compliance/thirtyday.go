package compliance

import (
	"time"

	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

const (
	// ReturnWindowDays is the 30-day rule: a tax-home visit is required at
	// least once every 30 days.
	ReturnWindowDays = 30

	// DefaultRiskThresholdDays flips the state to AT_RISK when that few
	// days remain before a return is due.
	DefaultRiskThresholdDays = 7
)

// DaysSinceLastVisit counts whole days from the last recorded visit to
// now. With no visit ever recorded the count runs from the start of the
// tracked tax year. Never negative.
func DaysSinceLastVisit(c model.TaxHomeCompliance, now time.Time) int {
	var from time.Time
	if c.LastVisitDate != nil {
		if v, ok := model.ParseDate(*c.LastVisitDate); ok {
			from = v
		}
	}
	if from.IsZero() {
		from = time.Date(c.TaxYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	days := int(truncateToDay(now).Sub(truncateToDay(from)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// EvaluateReturnRule runs the 30-day state machine as of the injected
// date. VIOLATED strictly above 30 days since the last visit; AT_RISK
// when the days remaining are within the risk threshold; otherwise
// COMPLIANT. A riskThreshold <= 0 uses the default of 7.
func EvaluateReturnRule(c model.TaxHomeCompliance, now time.Time, riskThreshold int) model.ReturnRuleResult {
	if riskThreshold <= 0 {
		riskThreshold = DefaultRiskThresholdDays
	}

	days := DaysSinceLastVisit(c, now)
	until := ReturnWindowDays - days
	if until < 0 {
		until = 0
	}

	state := model.ReturnCompliant
	switch {
	case days > ReturnWindowDays:
		state = model.ReturnViolated
	case until > 0 && until <= riskThreshold:
		state = model.ReturnAtRisk
	}

	return model.ReturnRuleResult{
		State:              state,
		DaysSinceLastVisit: days,
		DaysUntilReturn:    until,
	}
}

// RecordVisit registers a tax-home visit: the only way the day counter
// resets to zero. daysStayed below zero counts as zero.
func RecordVisit(c model.TaxHomeCompliance, date time.Time, daysStayed int) model.TaxHomeCompliance {
	if daysStayed < 0 {
		daysStayed = 0
	}
	visited := model.FormatDate(date)
	c.LastVisitDate = &visited
	c.DaysAtTaxHome += daysStayed
	c.DaysSinceLastVisit = 0
	return c
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
