package gsa

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultRate(t *testing.T) {
	r := RateFor("")
	if !r.DailyLodging.Equal(decimal.NewFromInt(107)) {
		t.Fatalf("expected default lodging 107, got %s", r.DailyLodging)
	}
	if !r.DailyMeals.Equal(decimal.NewFromInt(59)) {
		t.Fatalf("expected default M&IE 59, got %s", r.DailyMeals)
	}
}

func TestWeeklyCeilingDefault(t *testing.T) {
	// (107 + 59) * 7 = 1162
	if c := WeeklyCeiling(""); !c.Equal(decimal.NewFromInt(1162)) {
		t.Fatalf("expected weekly ceiling 1162, got %s", c)
	}
}

func TestUnknownLocationFallsBack(t *testing.T) {
	if c := WeeklyCeiling("Nowhere, ZZ"); !c.Equal(decimal.NewFromInt(1162)) {
		t.Fatalf("expected default ceiling for unknown location, got %s", c)
	}
}

func TestLoadOverrides(t *testing.T) {
	data := []byte(`
"San Francisco, CA":
  daily_lodging: "311"
  daily_meals: "79"
"Boston, MA":
  daily_lodging: "232"
  daily_meals: "69"
`)
	rates, err := LoadOverrides(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(rates))
	}
	sf := rates["San Francisco, CA"]
	if !sf.DailyLodging.Equal(decimal.NewFromInt(311)) {
		t.Fatalf("expected SF lodging 311, got %s", sf.DailyLodging)
	}
}

func TestLoadOverridesBadAmount(t *testing.T) {
	data := []byte(`
"Bad, XX":
  daily_lodging: "lots"
  daily_meals: "59"
`)
	if _, err := LoadOverrides(data); err == nil {
		t.Fatal("expected error for malformed amount")
	}
}
