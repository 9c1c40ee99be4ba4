package model

import "regexp"

// MatchRule selects windows. Nil patterns impose no constraint; a rule
// without patterns matches every window. When Index is set the rule selects
// only the window at that position of its own pid-sorted match list.
type MatchRule struct {
	AppID *regexp.Regexp
	Title *regexp.Regexp
	Index *int
}

// Application is a named launch target with the rules that identify its window.
// Exactly one of Spawn and SpawnSh is set on a validated application.
type Application struct {
	Name     string
	Spawn    []string
	SpawnSh  *string
	Matches  []MatchRule
	Excludes []MatchRule
}

// LaunchKind describes how the application is started, for display.
func (a *Application) LaunchKind() string {
	switch {
	case a.Spawn != nil && a.SpawnSh != nil:
		return "conflict"
	case a.Spawn != nil:
		return "spawn"
	case a.SpawnSh != nil:
		return "spawn-sh"
	default:
		return "none"
	}
}
