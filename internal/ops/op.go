package ops

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
	"github.com/kojjob/TravelNurse-sub001/internal/taxconfig"
)

// State is the mutable calculation state threaded through a run. The
// compliance snapshot is nil until the request supplies one.
type State struct {
	Compliance *model.TaxHomeCompliance
}

// Context carries the static configuration shared by all operations in
// a run.
type Context struct {
	Table   *taxconfig.TaxTable
	Scoring compliance.ScoringPolicy
}

// Handler defines the contract for all operation implementations. Each
// operation validates business rules, then applies state changes and
// produces its result payload.
type Handler interface {
	Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage
	Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage)
}

// opNow resolves the injected current date for a date-relative
// operation. The engine never reads a wall clock.
func opNow(op *model.Operation) (time.Time, bool) {
	return model.ParseDate(op.ActualAt)
}

func critical(code, message string) model.CalculationMessage {
	return model.CalculationMessage{Level: model.LevelCritical, Code: code, Message: message}
}

func marshalResult(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
