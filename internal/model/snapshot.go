package model

import "errors"

var (
	// ErrNoFocusedWorkspace is returned when no workspace reports focus.
	ErrNoFocusedWorkspace = errors.New("no focused workspace found")
	// ErrNoHiddenWorkspace is returned when no workspace is flagged hidden.
	ErrNoHiddenWorkspace = errors.New("no hidden workspace found")
)

// Snapshot is a point-in-time read of all windows and workspaces. It is never
// mutated; identifiers in it are only meaningful together.
type Snapshot struct {
	Windows    []Window
	Workspaces []Workspace
}

// FindWindow returns the window with id, or nil.
func (s *Snapshot) FindWindow(id uint64) *Window {
	for i := range s.Windows {
		if s.Windows[i].ID == id {
			return &s.Windows[i]
		}
	}
	return nil
}

// WorkspaceByID returns the workspace with id, or nil.
func (s *Snapshot) WorkspaceByID(id uint64) *Workspace {
	for i := range s.Workspaces {
		if s.Workspaces[i].ID == id {
			return &s.Workspaces[i]
		}
	}
	return nil
}

// FocusedWindow returns the focused window if there is one.
func (s *Snapshot) FocusedWindow() *Window {
	for i := range s.Windows {
		if s.Windows[i].IsFocused {
			return &s.Windows[i]
		}
	}
	return nil
}

// FocusedWorkspace returns the focused workspace.
func (s *Snapshot) FocusedWorkspace() (*Workspace, error) {
	for i := range s.Workspaces {
		if s.Workspaces[i].IsFocused {
			return &s.Workspaces[i], nil
		}
	}
	return nil, ErrNoFocusedWorkspace
}

// HiddenWorkspace returns the first workspace flagged hidden.
func (s *Snapshot) HiddenWorkspace() (*Workspace, error) {
	for i := range s.Workspaces {
		if s.Workspaces[i].IsHidden {
			return &s.Workspaces[i], nil
		}
	}
	return nil, ErrNoHiddenWorkspace
}

// HiddenWorkspaces returns every workspace flagged hidden. More than one
// usually means the compositor configuration is off.
func (s *Snapshot) HiddenWorkspaces() []Workspace {
	var hidden []Workspace
	for _, ws := range s.Workspaces {
		if ws.IsHidden {
			hidden = append(hidden, ws)
		}
	}
	return hidden
}
