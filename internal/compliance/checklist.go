// Package compliance provides pure functions for tax-home compliance:
// weighted checklist scoring and the 30-day-return day counter. The
// current date is always injected, never read from a wall clock, so
// every result is reproducible.
package compliance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

// ScoringPolicy resolves the half-credit question for Partial items.
// When PartialCredit is false a Partial item earns nothing, same as
// Incomplete.
type ScoringPolicy struct {
	PartialCredit bool
}

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// Score computes round(100 * earnedWeight / eligibleWeight). Items marked
// NotApplicable are excluded from the eligible weight. All items
// NotApplicable (or no items) scores 0.
func Score(items []model.ComplianceChecklistItem, policy ScoringPolicy) int {
	earned := decimal.Zero
	eligible := decimal.Zero

	for _, item := range items {
		if item.Status == model.StatusNotApplicable {
			continue
		}
		weight := decimal.NewFromInt(int64(item.Weight))
		eligible = eligible.Add(weight)
		switch item.Status {
		case model.StatusComplete:
			earned = earned.Add(weight)
		case model.StatusPartial:
			if policy.PartialCredit {
				earned = earned.Add(weight.Div(two))
			}
		}
	}

	if !eligible.IsPositive() {
		return 0
	}
	return int(earned.Mul(hundred).Div(eligible).Round(0).IntPart())
}

// Level maps a score to its compliance level.
func Level(score int) string {
	switch {
	case score >= 90:
		return model.LevelExcellent
	case score >= 70:
		return model.LevelGood
	case score >= 50:
		return model.LevelAtRisk
	default:
		return model.LevelNonCompliant
	}
}

// ToggleItem flips an item between Complete and Incomplete; a Partial or
// NotApplicable item toggles to Complete, matching checkbox behavior. An
// unknown id is a no-op returning the input unchanged.
func ToggleItem(items []model.ComplianceChecklistItem, itemID string, now time.Time) ([]model.ComplianceChecklistItem, bool) {
	for i, item := range items {
		if item.ItemID != itemID {
			continue
		}
		next := make([]model.ComplianceChecklistItem, len(items))
		copy(next, items)
		if item.Status == model.StatusComplete {
			next[i].Status = model.StatusIncomplete
		} else {
			next[i].Status = model.StatusComplete
		}
		next[i].LastUpdated = model.FormatDate(now)
		return next, true
	}
	return items, false
}

// SetItemStatus sets an arbitrary status and stamps the update date.
// An unknown id is a no-op returning the input unchanged.
func SetItemStatus(items []model.ComplianceChecklistItem, itemID, status, notes string, now time.Time) ([]model.ComplianceChecklistItem, bool) {
	for i, item := range items {
		if item.ItemID != itemID {
			continue
		}
		next := make([]model.ComplianceChecklistItem, len(items))
		copy(next, items)
		next[i].Status = status
		if notes != "" {
			next[i].Notes = notes
		}
		next[i].LastUpdated = model.FormatDate(now)
		return next, true
	}
	return items, false
}

// ValidStatus reports whether s is a known checklist status.
func ValidStatus(s string) bool {
	switch s {
	case model.StatusIncomplete, model.StatusPartial, model.StatusComplete, model.StatusNotApplicable:
		return true
	}
	return false
}

// Recompute returns the snapshot with its derived score and level
// refreshed from the current items. Call after every mutation.
func Recompute(c model.TaxHomeCompliance, policy ScoringPolicy) model.TaxHomeCompliance {
	c.ComplianceScore = Score(c.ChecklistItems, policy)
	c.ComplianceLevel = Level(c.ComplianceScore)
	return c
}
