// Package match resolves an application's include and exclude rules against
// a window snapshot.
package match

import "github.com/GoodbyeNJN/niri-app-hotkey/internal/model"

// MatchesRule reports whether w satisfies every pattern present on r.
// Patterns use regexp search semantics, so they are unanchored unless the
// pattern anchors itself. A window that lacks a field the rule targets
// never matches.
func MatchesRule(w model.Window, r model.MatchRule) bool {
	if r.AppID != nil {
		if w.AppID == nil || !r.AppID.MatchString(*w.AppID) {
			return false
		}
	}
	if r.Title != nil {
		if w.Title == nil || !r.Title.MatchString(*w.Title) {
			return false
		}
	}
	return true
}
