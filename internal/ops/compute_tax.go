package ops

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/kojjob/TravelNurse-sub001/internal/model"
	"github.com/kojjob/TravelNurse-sub001/internal/taxengine"
)

type computeTaxProps struct {
	GrossIncome            decimal.Decimal    `json:"gross_income"`
	FilingStatus           model.FilingStatus `json:"filing_status"`
	ApplyStandardDeduction bool               `json:"apply_standard_deduction"`
}

type computeTaxResult struct {
	TaxYear           int             `json:"tax_year"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	FederalTax        decimal.Decimal `json:"federal_tax"`
	EffectiveRate     decimal.Decimal `json:"effective_rate"`
}

type ComputeTaxHandler struct{}

func (h *ComputeTaxHandler) Validate(ctx *Context, state *State, op *model.Operation) []model.CalculationMessage {
	var props computeTaxProps
	json.Unmarshal(op.OperationProperties, &props)

	if _, err := ctx.Table.BracketsFor(props.FilingStatus); err != nil {
		return []model.CalculationMessage{critical("UNKNOWN_FILING_STATUS",
			fmt.Sprintf("No bracket table for filing status %q", props.FilingStatus))}
	}

	var msgs []model.CalculationMessage
	if props.GrossIncome.IsNegative() {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "NEGATIVE_INCOME_CLAMPED",
			Message: "Gross income is negative and will be treated as 0",
		})
	}
	return msgs
}

func (h *ComputeTaxHandler) Apply(ctx *Context, state *State, op *model.Operation) (json.RawMessage, []model.CalculationMessage) {
	var props computeTaxProps
	json.Unmarshal(op.OperationProperties, &props)

	gross := props.GrossIncome
	if gross.IsNegative() {
		gross = decimal.Zero
	}

	deduction := decimal.Zero
	if props.ApplyStandardDeduction {
		deduction, _ = ctx.Table.StandardDeduction(props.FilingStatus)
	}
	taxable := taxengine.TaxableIncome(gross, deduction)

	tax, err := taxengine.ComputeTax(ctx.Table, taxable, props.FilingStatus)
	if err != nil {
		return nil, []model.CalculationMessage{critical("CONFIGURATION_ERROR", err.Error())}
	}
	rate, err := taxengine.EffectiveRate(ctx.Table, taxable, props.FilingStatus)
	if err != nil {
		return nil, []model.CalculationMessage{critical("CONFIGURATION_ERROR", err.Error())}
	}

	return marshalResult(computeTaxResult{
		TaxYear:           ctx.Table.TaxYear,
		TaxableIncome:     taxable,
		StandardDeduction: deduction,
		FederalTax:        tax,
		EffectiveRate:     rate.Round(4),
	}), nil
}
