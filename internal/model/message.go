package model

// CalculationMessage is one leveled diagnostic produced while processing
// an operation. CRITICAL stops the run; WARNING does not.
type CalculationMessage struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)
