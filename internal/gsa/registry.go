// Package gsa resolves GSA per-diem ceilings (daily lodging and M&IE)
// used to flag stipends that exceed the published rates. Rates come from
// a compiled-in CONUS default plus an optional per-location override
// table loaded from a local YAML file; there is no network lookup.
package gsa

import (
	"fmt"
	"os"
	"sync"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rate is one location's daily ceiling pair.
type Rate struct {
	DailyLodging decimal.Decimal
	DailyMeals   decimal.Decimal
}

var (
	overridePath string
	overrides    map[string]Rate
	loadOnce     sync.Once
	cache        sync.Map
)

func init() {
	overridePath = os.Getenv("GSA_RATE_TABLE")
}

// FY2024 standard CONUS rate: $107 lodging, $59 M&IE.
var defaultRate = Rate{
	DailyLodging: decimal.NewFromInt(107),
	DailyMeals:   decimal.NewFromInt(59),
}

type yamlRate struct {
	DailyLodging string `yaml:"daily_lodging"`
	DailyMeals   string `yaml:"daily_meals"`
}

// LoadOverrides parses a location→rate override table. Amounts are
// strings so they parse into exact decimals.
func LoadOverrides(data []byte) (map[string]Rate, error) {
	var raw map[string]yamlRate
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse gsa rate table: %w", err)
	}
	rates := make(map[string]Rate, len(raw))
	for location, yr := range raw {
		lodging, err := decimal.NewFromString(yr.DailyLodging)
		if err != nil {
			return nil, fmt.Errorf("gsa rate for %s: bad daily_lodging %q", location, yr.DailyLodging)
		}
		meals, err := decimal.NewFromString(yr.DailyMeals)
		if err != nil {
			return nil, fmt.Errorf("gsa rate for %s: bad daily_meals %q", location, yr.DailyMeals)
		}
		rates[location] = Rate{DailyLodging: lodging, DailyMeals: meals}
	}
	return rates, nil
}

// RateFor returns the override rate for a location, or the CONUS default.
// Lookups are cached. An empty location always maps to the default.
func RateFor(location string) Rate {
	if location == "" {
		return defaultRate
	}
	if r, ok := cache.Load(location); ok {
		return r.(Rate)
	}

	loadOnce.Do(func() {
		if overridePath == "" {
			return
		}
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return
		}
		if rates, err := LoadOverrides(data); err == nil {
			overrides = rates
		}
	})

	rate := defaultRate
	if r, ok := overrides[location]; ok {
		rate = r
	}
	cache.Store(location, rate)
	return rate
}

// WeeklyCeiling is the maximum compliant weekly non-taxable stipend for
// a location: (daily lodging + daily M&IE) * 7.
func WeeklyCeiling(location string) decimal.Decimal {
	r := RateFor(location)
	return r.DailyLodging.Add(r.DailyMeals).Mul(decimal.NewFromInt(7))
}
