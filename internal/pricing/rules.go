package pricing

import "registration-engine/internal/model"

// MatchRule scans rules in array order and returns the first rule whose
// bracket contains age. When nothing matches it returns the implicit
// default: full adult price, no quota.
func MatchRule(age int, rules []model.AgeRule) model.AgeRule {
	if i := matchIndex(age, rules); i >= 0 {
		return rules[i]
	}
	return model.AgeRule{PriceFraction: 1}
}

// matchIndex returns the index of the first rule containing age, -1 when
// none does.
func matchIndex(age int, rules []model.AgeRule) int {
	for i, r := range rules {
		if r.Contains(age) {
			return i
		}
	}
	return -1
}
