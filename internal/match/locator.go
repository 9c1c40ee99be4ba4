package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

var (
	// ErrAmbiguous is returned when more than one window survives the rules.
	ErrAmbiguous = errors.New("multiple windows matched the given rules")
	// ErrNoWorkspace is returned when the matched window has no workspace.
	ErrNoWorkspace = errors.New("matched window does not belong to any workspace")
	// ErrWorkspaceNotFound is returned when the matched window references a
	// workspace missing from the snapshot.
	ErrWorkspaceNotFound = errors.New("workspace not found for matched window")
)

// Kind classifies a locate result.
type Kind int

const (
	NoMatch Kind = iota
	Matched
)

func (k Kind) String() string {
	if k == Matched {
		return "matched"
	}
	return "no-match"
}

// Result is the outcome of Locate. Window and Workspace are set only when
// Kind is Matched and point into the snapshot.
type Result struct {
	Kind      Kind
	Window    *model.Window
	Workspace *model.Workspace
}

// AmbiguousError lists every candidate window left after applying the rules.
type AmbiguousError struct {
	Candidates []model.Window
}

func (e *AmbiguousError) Error() string {
	parts := make([]string, 0, len(e.Candidates))
	for _, w := range e.Candidates {
		parts = append(parts, describe(w))
	}
	return fmt.Sprintf("%s; refine your match/exclude rules to target a single window. Matched windows: %s",
		ErrAmbiguous, strings.Join(parts, ", "))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguous }

// Candidates returns the windows selected by includes and not by excludes,
// in snapshot order.
func Candidates(windows []model.Window, includes, excludes []model.MatchRule) []model.Window {
	included := Selected(windows, includes)
	excluded := Selected(windows, excludes)
	var out []model.Window
	for _, w := range windows {
		if _, ok := excluded[w.ID]; ok {
			continue
		}
		if _, ok := included[w.ID]; ok {
			out = append(out, w)
		}
	}
	return out
}

// Locate resolves includes and excludes to at most one window and pairs it
// with its workspace.
func Locate(snap *model.Snapshot, includes, excludes []model.MatchRule) (Result, error) {
	candidates := Candidates(snap.Windows, includes, excludes)
	switch {
	case len(candidates) > 1:
		return Result{}, &AmbiguousError{Candidates: candidates}
	case len(candidates) == 0:
		return Result{Kind: NoMatch}, nil
	}

	window := snap.FindWindow(candidates[0].ID)
	if window.WorkspaceID == nil {
		return Result{}, fmt.Errorf("window %d: %w", window.ID, ErrNoWorkspace)
	}
	workspace := snap.WorkspaceByID(*window.WorkspaceID)
	if workspace == nil {
		return Result{}, fmt.Errorf("workspace %d for window %d: %w", *window.WorkspaceID, window.ID, ErrWorkspaceNotFound)
	}
	return Result{Kind: Matched, Window: window, Workspace: workspace}, nil
}

func describe(w model.Window) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{id=%d", w.ID)
	if w.AppID != nil {
		fmt.Fprintf(&b, " app_id=%q", *w.AppID)
	}
	if w.Title != nil {
		fmt.Fprintf(&b, " title=%q", *w.Title)
	}
	if w.PID != nil {
		fmt.Fprintf(&b, " pid=%d", *w.PID)
	}
	b.WriteString("}")
	return b.String()
}
