package ops

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

type evaluateReturnRuleProps struct {
	RiskThresholdDays int `json:"risk_threshold_days,omitempty"`
}

type EvaluateReturnRuleHandler struct{}

func (h *EvaluateReturnRuleHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	if state.Compliance == nil {
		return []model.CalculationMessage{critical("COMPLIANCE_NOT_FOUND", "No compliance snapshot in this calculation")}
	}
	if _, ok := opNow(op); !ok {
		return []model.CalculationMessage{critical("INVALID_ACTUAL_AT",
			fmt.Sprintf("actual_at %q is not a valid date", op.ActualAt))}
	}
	return nil
}

func (h *EvaluateReturnRuleHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props evaluateReturnRuleProps
	json.Unmarshal(op.OperationProperties, &props)

	now, _ := opNow(op)

	result := compliance.EvaluateReturnRule(*state.Compliance, now, props.RiskThresholdDays)

	// The snapshot's counter advances with the injected date; only a
	// recorded visit resets it.
	next := *state.Compliance
	next.DaysSinceLastVisit = result.DaysSinceLastVisit
	state.Compliance = &next

	return marshalResult(result), nil
}
