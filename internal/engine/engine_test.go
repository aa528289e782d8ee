package engine

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/kojjob/TravelNurse-sub001/internal/compliance"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
	"github.com/kojjob/TravelNurse-sub001/internal/taxconfig"
)

func newTestEngine() *Engine {
	return New(taxconfig.Default2024(), compliance.ScoringPolicy{})
}

func sampleCompliance() *model.TaxHomeCompliance {
	return &model.TaxHomeCompliance{
		TaxYear: 2024,
		ChecklistItems: []model.ComplianceChecklistItem{
			{ItemID: "own-home", Title: "Maintain a residence", Category: model.CategoryResidence, Weight: 50, Status: model.StatusComplete},
			{ItemID: "pay-bills", Title: "Pay utilities", Category: model.CategoryFinancial, Weight: 50, Status: model.StatusIncomplete},
		},
	}
}

func TestProcessComputeTax(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			Operations: []model.Operation{
				{
					OperationID:   "a1111111-1111-1111-1111-111111111111",
					OperationName: "compute_tax",
					OperationProperties: json.RawMessage(`{
						"gross_income": "60000",
						"filing_status": "SINGLE",
						"apply_standard_deduction": true
					}`),
				},
			},
		},
	}

	resp := newTestEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	if len(resp.CalculationResult.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(resp.CalculationResult.Messages))
	}
	if len(resp.CalculationResult.Operations) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(resp.CalculationResult.Operations))
	}

	var result struct {
		TaxableIncome decimal.Decimal `json:"taxable_income"`
		FederalTax    decimal.Decimal `json:"federal_tax"`
	}
	if err := json.Unmarshal(resp.CalculationResult.Operations[0].Result, &result); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if !result.TaxableIncome.Equal(decimal.NewFromInt(45400)) {
		t.Fatalf("expected taxable income 45400, got %s", result.TaxableIncome)
	}
	if !result.FederalTax.Equal(decimal.RequireFromString("5216.00")) {
		t.Fatalf("expected federal tax 5216.00, got %s", result.FederalTax)
	}
}

func TestProcessVisitThenEvaluate(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			InitialCompliance: sampleCompliance(),
			Operations: []model.Operation{
				{
					OperationID:   "b1111111-1111-1111-1111-111111111111",
					OperationName: "record_visit",
					ActualAt:      "2024-05-10",
					OperationProperties: json.RawMessage(`{
						"visit_date": "2024-05-10",
						"days_stayed": 3
					}`),
				},
				{
					OperationID:         "b2222222-2222-2222-2222-222222222222",
					OperationName:       "evaluate_return_rule",
					ActualAt:            "2024-06-12",
					OperationProperties: json.RawMessage(`{}`),
				},
			},
		},
	}

	resp := newTestEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	end := resp.CalculationResult.EndCompliance
	if end == nil {
		t.Fatal("expected end compliance snapshot")
	}
	if end.LastVisitDate == nil || *end.LastVisitDate != "2024-05-10" {
		t.Fatalf("expected last visit 2024-05-10, got %v", end.LastVisitDate)
	}
	if end.DaysAtTaxHome != 3 {
		t.Fatalf("expected 3 days at tax home, got %d", end.DaysAtTaxHome)
	}
	// 2024-05-10 to 2024-06-12 is 33 days.
	if end.DaysSinceLastVisit != 33 {
		t.Fatalf("expected 33 days since visit, got %d", end.DaysSinceLastVisit)
	}

	var rule model.ReturnRuleResult
	if err := json.Unmarshal(resp.CalculationResult.Operations[1].Result, &rule); err != nil {
		t.Fatalf("failed to decode result: %v", err)
	}
	if rule.State != model.ReturnViolated {
		t.Fatalf("expected VIOLATED, got %s", rule.State)
	}

	// The initial snapshot is untouched.
	if resp.CalculationResult.InitialCompliance.LastVisitDate != nil {
		t.Fatal("initial snapshot should not record the visit")
	}
	if len(resp.CalculationResult.CompliancePatch) == 0 {
		t.Fatal("expected a non-empty compliance patch")
	}
}

func TestProcessToggleRecomputesScore(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			InitialCompliance: sampleCompliance(),
			Operations: []model.Operation{
				{
					OperationID:         "c1111111-1111-1111-1111-111111111111",
					OperationName:       "toggle_item",
					ActualAt:            "2024-06-01",
					OperationProperties: json.RawMessage(`{"item_id": "pay-bills"}`),
				},
			},
		},
	}

	resp := newTestEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	end := resp.CalculationResult.EndCompliance
	if end.ChecklistItems[1].Status != model.StatusComplete {
		t.Fatalf("expected COMPLETE after toggle, got %s", end.ChecklistItems[1].Status)
	}
	if end.ComplianceScore != 100 {
		t.Fatalf("expected score 100, got %d", end.ComplianceScore)
	}
	if end.ComplianceLevel != model.LevelExcellent {
		t.Fatalf("expected EXCELLENT, got %s", end.ComplianceLevel)
	}
}

func TestProcessUnknownItemIsWarningOnly(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			InitialCompliance: sampleCompliance(),
			Operations: []model.Operation{
				{
					OperationID:         "d1111111-1111-1111-1111-111111111111",
					OperationName:       "toggle_item",
					ActualAt:            "2024-06-01",
					OperationProperties: json.RawMessage(`{"item_id": "missing"}`),
				},
			},
		},
	}

	resp := newTestEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.CalculationResult.Messages))
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_ITEM" {
		t.Fatalf("expected UNKNOWN_ITEM, got %s", resp.CalculationResult.Messages[0].Code)
	}
	if resp.CalculationResult.Messages[0].Level != model.LevelWarning {
		t.Fatalf("expected WARNING, got %s", resp.CalculationResult.Messages[0].Level)
	}
}

func TestProcessUnknownOperationStops(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			Operations: []model.Operation{
				{
					OperationID:         "e1111111-1111-1111-1111-111111111111",
					OperationName:       "frobnicate",
					OperationProperties: json.RawMessage(`{}`),
				},
				{
					OperationID:         "e2222222-2222-2222-2222-222222222222",
					OperationName:       "compute_tax",
					OperationProperties: json.RawMessage(`{"gross_income": "1", "filing_status": "SINGLE"}`),
				},
			},
		},
	}

	resp := newTestEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.CalculationResult.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(resp.CalculationResult.Messages))
	}
	if resp.CalculationResult.Messages[0].Code != "UNKNOWN_OPERATION" {
		t.Fatalf("expected UNKNOWN_OPERATION, got %s", resp.CalculationResult.Messages[0].Code)
	}
	// Processing stops at the failing operation.
	if len(resp.CalculationResult.Operations) != 1 {
		t.Fatalf("expected 1 processed operation, got %d", len(resp.CalculationResult.Operations))
	}
}

func TestProcessMissingComplianceIsCritical(t *testing.T) {
	req := &model.CalculationRequest{
		TenantID: "test-tenant",
		CalculationInstructions: model.CalculationInstructions{
			Operations: []model.Operation{
				{
					OperationID:         "f1111111-1111-1111-1111-111111111111",
					OperationName:       "score_checklist",
					OperationProperties: json.RawMessage(`{}`),
				},
			},
		},
	}

	resp := newTestEngine().Process(req)

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != "COMPLIANCE_NOT_FOUND" {
		t.Fatalf("expected COMPLIANCE_NOT_FOUND, got %s", resp.CalculationResult.Messages[0].Code)
	}
}
