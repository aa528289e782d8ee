package taxconfig

import "fmt"

// ConfigurationError reports a malformed or mismatched tax-year table.
// It indicates a programmer/config mistake, not bad user input, and is
// the only hard failure the calculation engines surface.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return "tax table configuration: " + e.Detail
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Detail: fmt.Sprintf(format, args...)}
}
