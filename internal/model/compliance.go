package model

// Checklist item categories.
const (
	CategoryResidence     = "RESIDENCE"
	CategoryPresence      = "PRESENCE"
	CategoryTies          = "TIES"
	CategoryFinancial     = "FINANCIAL"
	CategoryDocumentation = "DOCUMENTATION"
)

// Checklist item statuses.
const (
	StatusIncomplete    = "INCOMPLETE"
	StatusPartial       = "PARTIAL"
	StatusComplete      = "COMPLETE"
	StatusNotApplicable = "NOT_APPLICABLE"
)

// Compliance levels derived from a score.
const (
	LevelExcellent    = "EXCELLENT"
	LevelGood         = "GOOD"
	LevelAtRisk       = "AT_RISK"
	LevelNonCompliant = "NON_COMPLIANT"
)

// 30-day return rule states.
const (
	ReturnCompliant = "COMPLIANT"
	ReturnAtRisk    = "AT_RISK"
	ReturnViolated  = "VIOLATED"
)

// ComplianceChecklistItem is one weighted tax-home maintenance item.
type ComplianceChecklistItem struct {
	ItemID      string `json:"item_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Weight      int    `json:"weight"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
	LastUpdated string `json:"last_updated,omitempty"`
}

// TaxHomeCompliance is the per-tax-year snapshot the caller persists.
// Score and level are derived, recomputed after every mutation.
type TaxHomeCompliance struct {
	TaxYear            int                       `json:"tax_year"`
	ChecklistItems     []ComplianceChecklistItem `json:"checklist_items"`
	DaysAtTaxHome      int                       `json:"days_at_tax_home"`
	LastVisitDate      *string                   `json:"last_visit_date"`
	DaysSinceLastVisit int                       `json:"days_since_last_visit"`
	ComplianceScore    int                       `json:"compliance_score"`
	ComplianceLevel    string                    `json:"compliance_level"`
}

// ReturnRuleResult is the evaluated 30-day rule as of an injected date.
type ReturnRuleResult struct {
	State              string `json:"state"`
	DaysSinceLastVisit int    `json:"days_since_last_visit"`
	DaysUntilReturn    int    `json:"days_until_return"`
}
