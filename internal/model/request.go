package model

import json "github.com/goccy/go-json"

// CalculationRequest is one deterministic calculation run: an optional
// initial compliance snapshot plus an ordered list of operations.
type CalculationRequest struct {
	TenantID                string                  `json:"tenant_id"`
	CalculationInstructions CalculationInstructions `json:"calculation_instructions"`
}

type CalculationInstructions struct {
	InitialCompliance *TaxHomeCompliance `json:"initial_compliance,omitempty"`
	Operations        []Operation        `json:"operations"`
}

// Operation names one engine call. ActualAt is the injected "now" for
// date-relative operations; the engine never reads a wall clock.
type Operation struct {
	OperationID         string          `json:"operation_id"`
	OperationName       string          `json:"operation_name"`
	ActualAt            string          `json:"actual_at,omitempty"`
	OperationProperties json.RawMessage `json:"operation_properties"`
}
