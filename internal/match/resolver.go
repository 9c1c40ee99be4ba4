package match

import (
	"sort"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

// RuleMatch is the outcome of one rule over a snapshot: the ids of matching
// windows in pid order, paired with the rule's configured index.
type RuleMatch struct {
	Index *int
	IDs   []uint64
}

// Selected returns the ids this rule selects. An index selects a single
// position of IDs and selects nothing when out of range; no index selects all.
func (m RuleMatch) Selected() []uint64 {
	if m.Index == nil {
		return m.IDs
	}
	k := *m.Index
	if k < 0 || k >= len(m.IDs) {
		return nil
	}
	return m.IDs[k : k+1]
}

// ResolveRules evaluates each rule against windows independently, keeping
// rule order.
func ResolveRules(windows []model.Window, rules []model.MatchRule) []RuleMatch {
	matches := make([]RuleMatch, 0, len(rules))
	for _, rule := range rules {
		var matched []model.Window
		for _, w := range windows {
			if MatchesRule(w, rule) {
				matched = append(matched, w)
			}
		}
		sortByPID(matched)
		ids := make([]uint64, len(matched))
		for i, w := range matched {
			ids[i] = w.ID
		}
		matches = append(matches, RuleMatch{Index: rule.Index, IDs: ids})
	}
	return matches
}

// Selected returns the union of ids selected by any of rules.
func Selected(windows []model.Window, rules []model.MatchRule) map[uint64]struct{} {
	set := make(map[uint64]struct{})
	for _, m := range ResolveRules(windows, rules) {
		for _, id := range m.Selected() {
			set[id] = struct{}{}
		}
	}
	return set
}

// sortByPID orders windows ascending by pid. A window without a pid compares
// equal to every other window, so only the stable sort decides its place.
func sortByPID(windows []model.Window) {
	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i].PID, windows[j].PID
		if a == nil || b == nil {
			return false
		}
		return *a < *b
	})
}
