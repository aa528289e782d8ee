package ops

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/compare"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

type compareOffersProps struct {
	Offers   []model.JobOffer  `json:"offers"`
	Settings model.TaxSettings `json:"settings"`
}

type compareOffersResult struct {
	Results []model.OfferComparisonResult `json:"results"`
}

type CompareOffersHandler struct{}

func (h *CompareOffersHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	var props compareOffersProps
	json.Unmarshal(op.OperationProperties, &props)

	switch props.Settings.FederalMode {
	case model.FederalModeFlat, "":
	case model.FederalModeBrackets:
		if _, err := ctx.Table.BracketsFor(props.Settings.FilingStatus); err != nil {
			return []model.CalculationMessage{critical("UNKNOWN_FILING_STATUS",
				fmt.Sprintf("No bracket table for filing status %q", props.Settings.FilingStatus))}
		}
	default:
		return []model.CalculationMessage{critical("UNKNOWN_FEDERAL_MODE",
			fmt.Sprintf("Unknown federal tax mode %q", props.Settings.FederalMode))}
	}

	switch props.Settings.BonusTreatment {
	case model.BonusOnce, model.BonusProrated, "":
	default:
		return []model.CalculationMessage{critical("UNKNOWN_BONUS_TREATMENT",
			fmt.Sprintf("Unknown bonus treatment %q", props.Settings.BonusTreatment))}
	}

	return nil
}

func (h *CompareOffersHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props compareOffersProps
	json.Unmarshal(op.OperationProperties, &props)

	results, msgs, err := compare.Compare(props.Offers, props.Settings, ctx.Table)
	if err != nil {
		return nil, []model.CalculationMessage{critical("CONFIGURATION_ERROR", err.Error())}
	}

	return marshalResult(compareOffersResult{Results: results}), msgs
}
