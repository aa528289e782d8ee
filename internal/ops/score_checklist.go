package ops

import (
	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

type scoreChecklistProps struct {
	PartialCredit *bool `json:"partial_credit,omitempty"`
}

type scoreResult struct {
	ComplianceScore int    `json:"compliance_score"`
	ComplianceLevel string `json:"compliance_level"`
}

type ScoreChecklistHandler struct{}

func (h *ScoreChecklistHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	if state.Compliance == nil {
		return []model.CalculationMessage{critical("COMPLIANCE_NOT_FOUND", "No compliance snapshot in this calculation")}
	}
	return nil
}

func (h *ScoreChecklistHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props scoreChecklistProps
	json.Unmarshal(op.OperationProperties, &props)

	policy := ctx.Scoring
	if props.PartialCredit != nil {
		policy.PartialCredit = *props.PartialCredit
	}

	next := compliance.Recompute(*state.Compliance, policy)
	state.Compliance = &next

	return marshalResult(scoreResult{
		ComplianceScore: next.ComplianceScore,
		ComplianceLevel: next.ComplianceLevel,
	}), nil
}
