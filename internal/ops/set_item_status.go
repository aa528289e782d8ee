package ops

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

type setItemStatusProps struct {
	ItemID string `json:"item_id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type SetItemStatusHandler struct{}

func (h *SetItemStatusHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	if state.Compliance == nil {
		return []model.CalculationMessage{critical("COMPLIANCE_NOT_FOUND", "No compliance snapshot in this calculation")}
	}
	if _, ok := opNow(op); !ok {
		return []model.CalculationMessage{critical("INVALID_ACTUAL_AT",
			fmt.Sprintf("actual_at %q is not a valid date", op.ActualAt))}
	}

	var props setItemStatusProps
	json.Unmarshal(op.OperationProperties, &props)

	if !compliance.ValidStatus(props.Status) {
		return []model.CalculationMessage{critical("INVALID_STATUS",
			fmt.Sprintf("Unknown checklist status %q", props.Status))}
	}
	return nil
}

func (h *SetItemStatusHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props setItemStatusProps
	json.Unmarshal(op.OperationProperties, &props)

	now, _ := opNow(op)

	items, changed := compliance.SetItemStatus(state.Compliance.ChecklistItems, props.ItemID, props.Status, props.Notes, now)
	var msgs []model.CalculationMessage
	if !changed {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_ITEM",
			Message: fmt.Sprintf("No checklist item with id %q; status unchanged", props.ItemID),
		})
	}

	next := *state.Compliance
	next.ChecklistItems = items
	next = compliance.Recompute(next, ctx.Scoring)
	state.Compliance = &next

	return marshalResult(scoreResult{
		ComplianceScore: next.ComplianceScore,
		ComplianceLevel: next.ComplianceLevel,
	}), msgs
}
