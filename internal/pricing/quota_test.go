package pricing

import (
	"testing"

	"registration-engine/internal/model"
)

func quotaRules() []model.AgeRule {
	return []model.AgeRule{
		{
			MinAge:        0,
			MaxAge:        intPtr(5),
			PriceFraction: 0,
			FreeSeatLimit: 1,
			Excess:        &model.ExcessRule{PriceFraction: 0.5},
		},
		{MinAge: 6, MaxAge: intPtr(11), PriceFraction: 0.5},
	}
}

func TestAllocateYoungestGetsFreeSeat(t *testing.T) {
	seats := []seat{
		{index: 0, age: 4, hasAge: true},
		{index: 1, age: 2, hasAge: true},
	}

	out := allocate(quotaRules(), seats)

	if !out[1].free || out[1].fraction != 0 {
		t.Fatalf("expected the 2-year-old free, got %+v", out[1])
	}
	if out[0].free || out[0].fraction != 0.5 {
		t.Fatalf("expected the 4-year-old at the excess fraction, got %+v", out[0])
	}
}

func TestAllocateExactlyLimitFree(t *testing.T) {
	rules := quotaRules()
	rules[0].FreeSeatLimit = 2

	seats := []seat{
		{index: 0, age: 5, hasAge: true},
		{index: 1, age: 1, hasAge: true},
		{index: 2, age: 3, hasAge: true},
		{index: 3, age: 4, hasAge: true},
		{index: 4, age: 2, hasAge: true},
	}

	out := allocate(rules, seats)

	free := 0
	for _, a := range out {
		if a.free {
			free++
		}
	}
	if free != 2 {
		t.Fatalf("expected exactly 2 free seats, got %d", free)
	}
	// Youngest two (ages 1 and 2) win the seats.
	if !out[1].free || !out[4].free {
		t.Fatalf("expected indexes 1 and 4 free, got %+v", out)
	}
	for _, i := range []int{0, 2, 3} {
		if out[i].fraction != 0.5 {
			t.Fatalf("expected excess fraction 0.5 at index %d, got %+v", i, out[i])
		}
	}
}

func TestAllocateTieBreakByListOrder(t *testing.T) {
	// Equal ages and equal eligibility: the earlier list position wins.
	seats := []seat{
		{index: 0, age: 3, hasAge: true},
		{index: 1, age: 3, hasAge: true},
	}

	out := allocate(quotaRules(), seats)
	if !out[0].free {
		t.Fatal("expected the first-listed participant to take the free seat")
	}
	if out[1].free {
		t.Fatal("expected the second-listed participant to be excess")
	}

	// Permute the list: the seat must follow list position, not identity.
	permuted := []seat{
		{index: 1, age: 3, hasAge: true},
		{index: 0, age: 3, hasAge: true},
	}
	out = allocate(quotaRules(), permuted)
	if !out[1].free || out[0].free {
		t.Fatal("expected the free seat to follow list order after permutation")
	}
}

func TestAllocateExcessWithoutExcessRule(t *testing.T) {
	rules := []model.AgeRule{
		{MinAge: 0, MaxAge: intPtr(5), PriceFraction: 0.3, FreeSeatLimit: 1},
	}
	seats := []seat{
		{index: 0, age: 2, hasAge: true},
		{index: 1, age: 4, hasAge: true},
	}

	out := allocate(rules, seats)
	if !out[0].free {
		t.Fatal("expected the younger participant free")
	}
	if out[1].fraction != 0.3 {
		t.Fatalf("expected fallback to the bracket's own fraction, got %v", out[1].fraction)
	}
}

func TestAllocateUnknownAgePaysFullPrice(t *testing.T) {
	seats := []seat{{index: 0, hasAge: false}}

	out := allocate(quotaRules(), seats)
	if out[0].fraction != 1 || out[0].free {
		t.Fatalf("expected full adult price for unknown age, got %+v", out[0])
	}
}

func TestAllocateEarlierRuleShieldsLaterQuotaRule(t *testing.T) {
	// First-match wins: a plain bracket listed before a quota bracket
	// captures the participant, so the quota never sees them.
	rules := []model.AgeRule{
		{MinAge: 0, MaxAge: intPtr(11), PriceFraction: 0.5},
		{MinAge: 0, MaxAge: intPtr(5), PriceFraction: 0, FreeSeatLimit: 3},
	}
	seats := []seat{{index: 0, age: 2, hasAge: true}}

	out := allocate(rules, seats)
	if out[0].free {
		t.Fatal("participant captured by the first rule must not take a free seat from the second")
	}
	if out[0].fraction != 0.5 {
		t.Fatalf("expected fraction 0.5 from the first matching rule, got %v", out[0].fraction)
	}
}
