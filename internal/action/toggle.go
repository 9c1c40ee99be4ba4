package action

import (
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/match"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

// ToggleBranch is the branch toggle takes for a given snapshot.
type ToggleBranch int

const (
	ToggleLaunch ToggleBranch = iota
	ToggleHide
	ToggleBringForward
)

func (b ToggleBranch) String() string {
	switch b {
	case ToggleLaunch:
		return "launch"
	case ToggleHide:
		return "hide"
	default:
		return "bring-forward"
	}
}

// Classify maps a locate result to exactly one toggle branch: no match
// launches, a focused match hides, any other match is brought forward.
func Classify(snap *model.Snapshot, res match.Result) ToggleBranch {
	if res.Kind == match.NoMatch {
		return ToggleLaunch
	}
	if focused := snap.FocusedWindow(); focused != nil && focused.ID == res.Window.ID {
		return ToggleHide
	}
	return ToggleBringForward
}
