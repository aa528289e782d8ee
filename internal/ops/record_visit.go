package ops

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

type recordVisitProps struct {
	VisitDate  string `json:"visit_date"`
	DaysStayed int    `json:"days_stayed"`
}

type recordVisitResult struct {
	LastVisitDate      string `json:"last_visit_date"`
	DaysAtTaxHome      int    `json:"days_at_tax_home"`
	DaysSinceLastVisit int    `json:"days_since_last_visit"`
}

type RecordVisitHandler struct{}

func (h *RecordVisitHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	if state.Compliance == nil {
		return []model.CalculationMessage{critical("COMPLIANCE_NOT_FOUND", "No compliance snapshot in this calculation")}
	}

	var props recordVisitProps
	json.Unmarshal(op.OperationProperties, &props)

	if _, ok := model.ParseDate(props.VisitDate); !ok {
		return []model.CalculationMessage{critical("INVALID_VISIT_DATE",
			fmt.Sprintf("visit_date %q is not a valid date", props.VisitDate))}
	}

	var msgs []model.CalculationMessage
	if props.DaysStayed < 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "NEGATIVE_DAYS_CLAMPED",
			Message: "days_stayed is negative and will be treated as 0",
		})
	}
	return msgs
}

func (h *RecordVisitHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props recordVisitProps
	json.Unmarshal(op.OperationProperties, &props)

	visitDate, _ := model.ParseDate(props.VisitDate)

	next := compliance.RecordVisit(*state.Compliance, visitDate, props.DaysStayed)
	if now, ok := opNow(op); ok {
		next.DaysSinceLastVisit = compliance.DaysSinceLastVisit(next, now)
	}
	state.Compliance = &next

	return marshalResult(recordVisitResult{
		LastVisitDate:      *next.LastVisitDate,
		DaysAtTaxHome:      next.DaysAtTaxHome,
		DaysSinceLastVisit: next.DaysSinceLastVisit,
	}), nil
}
