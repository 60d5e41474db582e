package pricing

import (
	"sort"

	"registration-engine/internal/model"
)

// seat is one participant's standing inside a pricing domain.
type seat struct {
	// index is the participant's position in the caller's list; it is the
	// tie-break order for quota allocation.
	index  int
	age    int
	hasAge bool
}

// assignment is the allocation outcome for one seat: the price fraction to
// apply and whether it came from a free-seat quota.
type assignment struct {
	fraction float64
	free     bool
}

// allocate assigns a price fraction to every seat for one domain's ordered
// rule list. A seat belongs to the first rule whose bracket contains its
// age; seats with no age, or no matching bracket, pay full adult price.
//
// Quota rules are resolved across the whole reservation: for each quota
// rule, in rule-list order, its seats are ordered youngest first (stable,
// so equal ages keep the caller's list order) and the first FreeSeatLimit
// of them are priced zero. The rest are excess: the rule's excess fraction
// when present, its own fraction otherwise.
func allocate(rules []model.AgeRule, seats []seat) map[int]assignment {
	out := make(map[int]assignment, len(seats))
	byRule := make(map[int][]seat)

	for _, s := range seats {
		ri := -1
		if s.hasAge {
			ri = matchIndex(s.age, rules)
		}
		if ri < 0 {
			out[s.index] = assignment{fraction: 1}
			continue
		}
		byRule[ri] = append(byRule[ri], s)
	}

	for ri, rule := range rules {
		captured := byRule[ri]
		if len(captured) == 0 {
			continue
		}
		if !rule.HasQuota() {
			for _, s := range captured {
				out[s.index] = assignment{fraction: rule.PriceFraction}
			}
			continue
		}

		// Youngest first; equal ages keep list order.
		sort.SliceStable(captured, func(i, j int) bool {
			return captured[i].age < captured[j].age
		})

		excess := rule.PriceFraction
		if rule.Excess != nil {
			excess = rule.Excess.PriceFraction
		}
		for i, s := range captured {
			if i < rule.FreeSeatLimit {
				out[s.index] = assignment{fraction: 0, free: true}
			} else {
				out[s.index] = assignment{fraction: excess}
			}
		}
	}

	return out
}
