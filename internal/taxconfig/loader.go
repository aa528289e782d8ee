package taxconfig

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

// YAML schema keeps monetary amounts as strings so they parse into exact
// decimals rather than binary floats.
type yamlTable struct {
	TaxYear            int                      `yaml:"tax_year"`
	Brackets           map[string][]yamlBracket `yaml:"brackets"`
	StandardDeductions map[string]string        `yaml:"standard_deductions"`
	NoIncomeTaxStates  []string                 `yaml:"no_income_tax_states"`
}

type yamlBracket struct {
	Lower string `yaml:"lower"`
	Upper string `yaml:"upper,omitempty"`
	Rate  string `yaml:"rate"`
}

// LoadFromFile loads and validates a tax-year table override, for
// configuring a year other than the compiled-in default.
func LoadFromFile(path string) (*TaxTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tax table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML tax table and validates it.
func Parse(data []byte) (*TaxTable, error) {
	var yt yamlTable
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return nil, fmt.Errorf("parse tax table: %w", err)
	}

	table := &TaxTable{
		TaxYear:            yt.TaxYear,
		Brackets:           make(map[model.FilingStatus][]model.TaxBracket, len(yt.Brackets)),
		StandardDeductions: make(map[model.FilingStatus]decimal.Decimal, len(yt.StandardDeductions)),
		NoIncomeTaxStates:  make(map[string]bool, len(yt.NoIncomeTaxStates)),
	}

	for status, ybs := range yt.Brackets {
		brackets := make([]model.TaxBracket, 0, len(ybs))
		for i, yb := range ybs {
			lower, err := decimal.NewFromString(yb.Lower)
			if err != nil {
				return nil, configErrorf("%s bracket %d: bad lower bound %q", status, i, yb.Lower)
			}
			rate, err := decimal.NewFromString(yb.Rate)
			if err != nil {
				return nil, configErrorf("%s bracket %d: bad rate %q", status, i, yb.Rate)
			}
			b := model.TaxBracket{LowerBound: lower, Rate: rate}
			if yb.Upper != "" {
				upper, err := decimal.NewFromString(yb.Upper)
				if err != nil {
					return nil, configErrorf("%s bracket %d: bad upper bound %q", status, i, yb.Upper)
				}
				b.UpperBound = &upper
			}
			brackets = append(brackets, b)
		}
		table.Brackets[model.FilingStatus(status)] = brackets
	}

	for status, raw := range yt.StandardDeductions {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, configErrorf("%s: bad standard deduction %q", status, raw)
		}
		table.StandardDeductions[model.FilingStatus(status)] = d
	}

	for _, state := range yt.NoIncomeTaxStates {
		table.NoIncomeTaxStates[state] = true
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
