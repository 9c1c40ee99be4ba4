package platform

import (
	"context"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

// Reader queries the compositor for its current windows and workspaces.
type Reader interface {
	// ListWindows returns every live window.
	ListWindows(ctx context.Context) ([]model.Window, error)

	// ListWorkspaces returns every workspace, including hidden ones.
	ListWorkspaces(ctx context.Context) ([]model.Workspace, error)
}

// WindowManager issues state-changing requests to the compositor.
type WindowManager interface {
	MoveWindowToWorkspace(ctx context.Context, opts MoveOptions) error
	FocusWindow(ctx context.Context, windowID uint64) error
}

// Compositor is a connected compositor client.
type Compositor interface {
	Reader
	WindowManager
	Close() error
}

// NewSnapshot fetches windows and workspaces. Either query failing fails the
// whole snapshot.
func NewSnapshot(ctx context.Context, r Reader) (*model.Snapshot, error) {
	windows, err := r.ListWindows(ctx)
	if err != nil {
		return nil, err
	}
	workspaces, err := r.ListWorkspaces(ctx)
	if err != nil {
		return nil, err
	}
	return &model.Snapshot{Windows: windows, Workspaces: workspaces}, nil
}
