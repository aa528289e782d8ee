package engine

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/jsondiff"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
	"github.com/kojjob/TravelNurse-sub001/internal/ops"
	"github.com/kojjob/TravelNurse-sub001/internal/taxconfig"
)

// Engine runs calculation requests against a fixed tax-year table and
// scoring policy. It holds no mutable state between runs.
type Engine struct {
	ctx *ops.Context
}

func New(table *taxconfig.TaxTable, scoring compliance.ScoringPolicy) *Engine {
	return &Engine{ctx: &ops.Context{Table: table, Scoring: scoring}}
}

// Process applies the request's operations in order against the supplied
// compliance snapshot. A CRITICAL message stops processing and marks the
// calculation FAILURE; WARNINGs accumulate without stopping it. The
// response always reports the initial and end snapshots plus the JSON
// patch between them.
func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	initial := cloneCompliance(req.CalculationInstructions.InitialCompliance)
	state := &ops.State{Compliance: cloneCompliance(req.CalculationInstructions.InitialCompliance)}

	var allMessages []model.CalculationMessage
	var processed []model.ProcessedOperation
	outcome := model.OutcomeSuccess
	hasCritical := false

	for _, op := range req.CalculationInstructions.Operations {
		handler, ok := ops.Get(op.OperationName)
		if !ok {
			msg := model.CalculationMessage{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_OPERATION",
				Message: fmt.Sprintf("Unknown operation: %s", op.OperationName),
			}
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedOperation{
				Operation:                 op,
				CalculationMessageIndexes: []int{msg.ID},
			})
			outcome = model.OutcomeFailure
			break
		}

		validationMsgs := handler.Validate(e.ctx, state, &op)
		var msgIndexes []int
		for _, vm := range validationMsgs {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			processed = append(processed, model.ProcessedOperation{
				Operation:                 op,
				CalculationMessageIndexes: msgIndexes,
			})
			break
		}

		result, applyMsgs := handler.Apply(e.ctx, state, &op)
		for _, am := range applyMsgs {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		processed = append(processed, model.ProcessedOperation{
			Operation:                 op,
			CalculationMessageIndexes: msgIndexes,
			Result:                    result,
		})

		if hasCritical {
			outcome = model.OutcomeFailure
			break
		}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:          allMessages,
			Operations:        processed,
			InitialCompliance: initial,
			EndCompliance:     state.Compliance,
			CompliancePatch:   compliancePatch(initial, state.Compliance),
		},
	}
}

func cloneCompliance(c *model.TaxHomeCompliance) *model.TaxHomeCompliance {
	if c == nil {
		return nil
	}
	next := *c
	if c.LastVisitDate != nil {
		v := *c.LastVisitDate
		next.LastVisitDate = &v
	}
	next.ChecklistItems = make([]model.ComplianceChecklistItem, len(c.ChecklistItems))
	copy(next.ChecklistItems, c.ChecklistItems)
	return &next
}

func compliancePatch(initial, end *model.TaxHomeCompliance) json.RawMessage {
	if initial == nil && end == nil {
		return nil
	}
	a, err := jsondiff.Snapshot(initial)
	if err != nil {
		return nil
	}
	b, err := jsondiff.Snapshot(end)
	if err != nil {
		return nil
	}
	patch := jsondiff.Diff(a, b, "")
	if len(patch) == 0 {
		return json.RawMessage("[]")
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil
	}
	return raw
}
