// Package action decides and issues the compositor requests behind each
// hotkey command. Every call works from a fresh snapshot and issues at most
// one state-changing request after its last check.
package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/launch"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/match"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
)

var (
	ErrNoMatch               = errors.New("no window matched the given rules")
	ErrNotFocused            = errors.New("the matched window is not focused, cannot hide it")
	ErrNoFocusedWindow       = errors.New("no focused window found")
	ErrAlreadyHidden         = errors.New("the matched window is already in the hidden workspace")
	ErrNotInFocusedWorkspace = errors.New("the matched window is not in the focused workspace, cannot activate it")
)

// Decision is the single effect an invocation settled on.
type Decision string

const (
	DecisionLaunch Decision = "launch"
	// DecisionHide moves the window to the hidden workspace without focus.
	DecisionHide Decision = "hide"
	// DecisionMove moves the window to the focused workspace and focuses it.
	DecisionMove Decision = "move"
	// DecisionFocus focuses the window in place.
	DecisionFocus Decision = "focus"
)

// Outcome describes what an invocation did.
type Outcome struct {
	Command     string
	App         string
	Decision    Decision
	WindowID    *uint64
	WorkspaceID *uint64
	Requests    int
}

// Orchestrator runs the hotkey commands against a compositor.
type Orchestrator struct {
	client   platform.Compositor
	launcher launch.Runner
	log      *logger.Logger
}

// New returns an orchestrator. client may be nil when only Launch is used.
func New(client platform.Compositor, launcher launch.Runner, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{client: client, launcher: launcher, log: log}
}

// Launch starts the application and waits for it to exit.
func (o *Orchestrator) Launch(ctx context.Context, app *model.Application) (Outcome, error) {
	out := Outcome{Command: "launch", App: app.Name}
	return o.launch(ctx, app, out)
}

// Show brings the matched window to the focused workspace and focuses it.
func (o *Orchestrator) Show(ctx context.Context, app *model.Application) (Outcome, error) {
	out := Outcome{Command: "show", App: app.Name}
	snap, res, err := o.locate(ctx, app)
	if err != nil {
		return out, err
	}
	if res.Kind == match.NoMatch {
		return out, fmt.Errorf("%s: %w", app.Name, ErrNoMatch)
	}
	return o.bringForward(ctx, snap, res, out)
}

// Hide moves the matched window, which must be focused, to the hidden
// workspace.
func (o *Orchestrator) Hide(ctx context.Context, app *model.Application) (Outcome, error) {
	out := Outcome{Command: "hide", App: app.Name}
	snap, res, err := o.locate(ctx, app)
	if err != nil {
		return out, err
	}
	if res.Kind == match.NoMatch {
		return out, fmt.Errorf("%s: %w", app.Name, ErrNoMatch)
	}

	focused := snap.FocusedWindow()
	if focused == nil {
		return out, fmt.Errorf("%s: %w: %w", app.Name, ErrNotFocused, ErrNoFocusedWindow)
	}
	if focused.ID != res.Window.ID {
		return out, fmt.Errorf("%s: %w (focused window is %d)", app.Name, ErrNotFocused, focused.ID)
	}
	hidden, err := o.hiddenWorkspace(snap)
	if err != nil {
		return out, err
	}
	if hidden.ID == res.Workspace.ID {
		return out, fmt.Errorf("%s: %w", app.Name, ErrAlreadyHidden)
	}
	return o.move(ctx, out, DecisionHide, res.Window, hidden, false)
}

// Activate focuses the matched window if it is on the focused workspace.
func (o *Orchestrator) Activate(ctx context.Context, app *model.Application) (Outcome, error) {
	out := Outcome{Command: "activate", App: app.Name}
	snap, res, err := o.locate(ctx, app)
	if err != nil {
		return out, err
	}
	if res.Kind == match.NoMatch {
		return out, fmt.Errorf("%s: %w", app.Name, ErrNoMatch)
	}

	focusedWS, err := snap.FocusedWorkspace()
	if err != nil {
		return out, err
	}
	if focusedWS.ID != res.Workspace.ID {
		return out, fmt.Errorf("%s: %w (window on workspace %s, focused workspace %s)",
			app.Name, ErrNotInFocusedWorkspace, res.Workspace.Label(), focusedWS.Label())
	}
	return o.focus(ctx, out, res.Window)
}

// Toggle launches the application when no window matches, hides the matched
// window when it is focused, and otherwise brings it forward.
func (o *Orchestrator) Toggle(ctx context.Context, app *model.Application) (Outcome, error) {
	out := Outcome{Command: "toggle", App: app.Name}
	snap, res, err := o.locate(ctx, app)
	if err != nil {
		return out, err
	}

	switch Classify(snap, res) {
	case ToggleLaunch:
		return o.launch(ctx, app, out)
	case ToggleHide:
		hidden, err := o.hiddenWorkspace(snap)
		if err != nil {
			return out, err
		}
		return o.move(ctx, out, DecisionHide, res.Window, hidden, false)
	default:
		return o.bringForward(ctx, snap, res, out)
	}
}

func (o *Orchestrator) locate(ctx context.Context, app *model.Application) (*model.Snapshot, match.Result, error) {
	if o.client == nil {
		return nil, match.Result{}, platform.ErrUnsupported
	}
	snap, err := platform.NewSnapshot(ctx, o.client)
	if err != nil {
		return nil, match.Result{}, fmt.Errorf("query compositor state: %w", err)
	}
	res, err := match.Locate(snap, app.Matches, app.Excludes)
	if err != nil {
		return nil, match.Result{}, fmt.Errorf("%s: %w", app.Name, err)
	}
	if res.Kind == match.Matched {
		o.log.Debug("matched window", "app", app.Name, "window", res.Window.ID, "workspace", res.Workspace.ID)
	} else {
		o.log.Debug("no window matched", "app", app.Name, "windows", len(snap.Windows))
	}
	return snap, res, nil
}

func (o *Orchestrator) hiddenWorkspace(snap *model.Snapshot) (*model.Workspace, error) {
	hidden, err := snap.HiddenWorkspace()
	if err != nil {
		return nil, err
	}
	if all := snap.HiddenWorkspaces(); len(all) > 1 {
		ids := make([]uint64, len(all))
		for i, ws := range all {
			ids[i] = ws.ID
		}
		o.log.Warn("more than one hidden workspace, using the first", "workspaces", ids, "using", hidden.ID)
	}
	return hidden, nil
}

// bringForward moves the window to the focused workspace with focus, or
// focuses it in place when it is already there.
func (o *Orchestrator) bringForward(ctx context.Context, snap *model.Snapshot, res match.Result, out Outcome) (Outcome, error) {
	focusedWS, err := snap.FocusedWorkspace()
	if err != nil {
		return out, err
	}
	if focusedWS.ID != res.Workspace.ID {
		return o.move(ctx, out, DecisionMove, res.Window, focusedWS, true)
	}
	return o.focus(ctx, out, res.Window)
}

func (o *Orchestrator) launch(ctx context.Context, app *model.Application, out Outcome) (Outcome, error) {
	out.Decision = DecisionLaunch
	o.log.Debug("decided", "command", out.Command, "app", app.Name, "decision", out.Decision)
	if err := o.launcher.Run(ctx, app); err != nil {
		return out, err
	}
	return out, nil
}

func (o *Orchestrator) move(ctx context.Context, out Outcome, decision Decision, w *model.Window, ws *model.Workspace, focus bool) (Outcome, error) {
	out.Decision = decision
	out.WindowID = &w.ID
	out.WorkspaceID = &ws.ID
	o.log.Info("moving window", "command", out.Command, "app", out.App, "window", w.ID, "workspace", ws.ID, "focus", focus)
	out.Requests++
	err := o.client.MoveWindowToWorkspace(ctx, platform.MoveOptions{
		WindowID:    w.ID,
		WorkspaceID: ws.ID,
		Focus:       focus,
	})
	if err != nil {
		return out, fmt.Errorf("move window %d to workspace %s: %w", w.ID, ws.Label(), err)
	}
	return out, nil
}

func (o *Orchestrator) focus(ctx context.Context, out Outcome, w *model.Window) (Outcome, error) {
	out.Decision = DecisionFocus
	out.WindowID = &w.ID
	out.WorkspaceID = w.WorkspaceID
	o.log.Info("focusing window", "command", out.Command, "app", out.App, "window", w.ID)
	out.Requests++
	if err := o.client.FocusWindow(ctx, w.ID); err != nil {
		return out, fmt.Errorf("focus window %d: %w", w.ID, err)
	}
	return out, nil
}
