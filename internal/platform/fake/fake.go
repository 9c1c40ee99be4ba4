// Package fake provides an in-memory compositor for tests.
package fake

import (
	"context"
	"fmt"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/launch"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
)

// Call records one state-changing request.
type Call struct {
	Name        string
	WindowID    uint64
	WorkspaceID uint64
	Focus       bool
}

func (c Call) String() string {
	if c.Name == "MoveWindowToWorkspace" {
		return fmt.Sprintf("%s(window=%d, workspace=%d, focus=%v)", c.Name, c.WindowID, c.WorkspaceID, c.Focus)
	}
	return fmt.Sprintf("%s(window=%d)", c.Name, c.WindowID)
}

// Compositor serves a fixed snapshot and records mutations without applying
// them.
type Compositor struct {
	Windows    []model.Window
	Workspaces []model.Workspace

	ListErr   error
	ActionErr error

	Calls   []Call
	Queries int
	Closed  bool
}

func (c *Compositor) ListWindows(context.Context) ([]model.Window, error) {
	c.Queries++
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return append([]model.Window(nil), c.Windows...), nil
}

func (c *Compositor) ListWorkspaces(context.Context) ([]model.Workspace, error) {
	c.Queries++
	if c.ListErr != nil {
		return nil, c.ListErr
	}
	return append([]model.Workspace(nil), c.Workspaces...), nil
}

func (c *Compositor) MoveWindowToWorkspace(_ context.Context, opts platform.MoveOptions) error {
	c.Calls = append(c.Calls, Call{Name: "MoveWindowToWorkspace", WindowID: opts.WindowID, WorkspaceID: opts.WorkspaceID, Focus: opts.Focus})
	return c.ActionErr
}

func (c *Compositor) FocusWindow(_ context.Context, windowID uint64) error {
	c.Calls = append(c.Calls, Call{Name: "FocusWindow", WindowID: windowID})
	return c.ActionErr
}

func (c *Compositor) Close() error {
	c.Closed = true
	return nil
}

var _ platform.Compositor = (*Compositor)(nil)

// Launcher counts launches instead of starting processes.
type Launcher struct {
	Launched []string
	Err      error
}

func (l *Launcher) Run(_ context.Context, app *model.Application) error {
	l.Launched = append(l.Launched, app.Name)
	return l.Err
}

var _ launch.Runner = (*Launcher)(nil)
