package ops

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

type toggleItemProps struct {
	ItemID string `json:"item_id"`
}

type ToggleItemHandler struct{}

func (h *ToggleItemHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	if state.Compliance == nil {
		return []model.CalculationMessage{critical("COMPLIANCE_NOT_FOUND", "No compliance snapshot in this calculation")}
	}
	if _, ok := opNow(op); !ok {
		return []model.CalculationMessage{critical("INVALID_ACTUAL_AT",
			fmt.Sprintf("actual_at %q is not a valid date", op.ActualAt))}
	}
	return nil
}

func (h *ToggleItemHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props toggleItemProps
	json.Unmarshal(op.OperationProperties, &props)

	now, _ := opNow(op)

	items, changed := compliance.ToggleItem(state.Compliance.ChecklistItems, props.ItemID, now)
	var msgs []model.CalculationMessage
	if !changed {
		// Unknown ids are a no-op, not an error: the caller's item list
		// is the source of truth.
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_ITEM",
			Message: fmt.Sprintf("No checklist item with id %q; nothing toggled", props.ItemID),
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
