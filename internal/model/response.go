package model

import json "github.com/goccy/go-json"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages          []CalculationMessage `json:"messages"`
	Operations        []ProcessedOperation `json:"operations"`
	InitialCompliance *TaxHomeCompliance   `json:"initial_compliance"`
	EndCompliance     *TaxHomeCompliance   `json:"end_compliance"`
	CompliancePatch   json.RawMessage      `json:"compliance_patch,omitempty"`
}

// ProcessedOperation echoes the operation, the indexes of the messages it
// produced, and its computed output (shape depends on the operation).
type ProcessedOperation struct {
	Operation                 Operation       `json:"operation"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	Result                    json.RawMessage `json:"result,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
