package pricing

import (
	"testing"

	"registration-engine/internal/model"
)

func intPtr(v int) *int { return &v }

func TestMatchRuleFirstMatchWins(t *testing.T) {
	rules := []model.AgeRule{
		{MinAge: 0, MaxAge: intPtr(11), PriceFraction: 0.5},
		{MinAge: 0, MaxAge: intPtr(5), PriceFraction: 0},
	}

	// Age 3 is inside both brackets; array order decides.
	r := MatchRule(3, rules)
	if r.PriceFraction != 0.5 {
		t.Fatalf("expected first rule (fraction 0.5), got fraction %v", r.PriceFraction)
	}
}

func TestMatchRuleUnboundedMaxAge(t *testing.T) {
	rules := []model.AgeRule{
		{MinAge: 0, MaxAge: intPtr(11), PriceFraction: 0.5},
		{MinAge: 60, PriceFraction: 0.8},
	}

	r := MatchRule(95, rules)
	if r.PriceFraction != 0.8 {
		t.Fatalf("expected unbounded senior rule, got fraction %v", r.PriceFraction)
	}
}

func TestMatchRuleNoMatchDefaultsToFullPrice(t *testing.T) {
	rules := []model.AgeRule{
		{MinAge: 0, MaxAge: intPtr(11), PriceFraction: 0.5},
	}

	r := MatchRule(30, rules)
	if r.PriceFraction != 1 {
		t.Fatalf("expected implicit full-price default, got fraction %v", r.PriceFraction)
	}
	if r.HasQuota() {
		t.Fatal("implicit default must not carry a quota")
	}
}

func TestMatchRuleEmptyList(t *testing.T) {
	r := MatchRule(30, nil)
	if r.PriceFraction != 1 {
		t.Fatalf("expected full price on empty rule list, got fraction %v", r.PriceFraction)
	}
}
