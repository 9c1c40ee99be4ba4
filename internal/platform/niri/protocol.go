package niri

import (
	"encoding/json"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

const (
	requestWindows              = "Windows"
	requestWorkspacesWithHidden = "WorkspacesWithHidden"
	responseHandled             = "Handled"
)

type reply struct {
	Ok  json.RawMessage `json:"Ok"`
	Err *string         `json:"Err"`
}

type actionRequest struct {
	Action interface{} `json:"Action"`
}

type focusWindowAction struct {
	FocusWindow struct {
		ID uint64 `json:"id"`
	} `json:"FocusWindow"`
}

type workspaceReference struct {
	ID uint64 `json:"Id"`
}

type moveWindowToWorkspaceAction struct {
	MoveWindowToWorkspace struct {
		WindowID  *uint64            `json:"window_id"`
		Reference workspaceReference `json:"reference"`
		Focus     bool               `json:"focus"`
	} `json:"MoveWindowToWorkspace"`
}

type rawWindow struct {
	ID          uint64  `json:"id"`
	Title       *string `json:"title"`
	AppID       *string `json:"app_id"`
	PID         *int    `json:"pid"`
	WorkspaceID *uint64 `json:"workspace_id"`
	IsFocused   bool    `json:"is_focused"`
}

type rawWorkspace struct {
	ID        uint64  `json:"id"`
	Idx       uint8   `json:"idx"`
	Name      *string `json:"name"`
	Output    *string `json:"output"`
	IsActive  bool    `json:"is_active"`
	IsFocused bool    `json:"is_focused"`
	IsHidden  bool    `json:"is_hidden"`
}

func (w rawWindow) toModel() model.Window {
	return model.Window{
		ID:          w.ID,
		AppID:       w.AppID,
		Title:       w.Title,
		PID:         w.PID,
		WorkspaceID: w.WorkspaceID,
		IsFocused:   w.IsFocused,
	}
}

func (w rawWorkspace) toModel() model.Workspace {
	return model.Workspace{
		ID:        w.ID,
		Idx:       w.Idx,
		Name:      w.Name,
		Output:    w.Output,
		IsActive:  w.IsActive,
		IsFocused: w.IsFocused,
		IsHidden:  w.IsHidden,
	}
}
