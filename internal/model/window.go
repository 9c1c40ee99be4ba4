package model

import "strconv"

// Window is a compositor window as reported by a single snapshot.
// Optional fields are nil when the compositor did not report them.
type Window struct {
	ID          uint64  `yaml:"id"                     json:"id"`
	AppID       *string `yaml:"app_id,omitempty"       json:"app_id,omitempty"`
	Title       *string `yaml:"title,omitempty"        json:"title,omitempty"`
	PID         *int    `yaml:"pid,omitempty"          json:"pid,omitempty"`
	WorkspaceID *uint64 `yaml:"workspace_id,omitempty" json:"workspace_id,omitempty"`
	IsFocused   bool    `yaml:"is_focused"             json:"is_focused"`
}

// Workspace is a compositor workspace as reported by a single snapshot.
type Workspace struct {
	ID        uint64  `yaml:"id"               json:"id"`
	Idx       uint8   `yaml:"idx"              json:"idx"`
	Name      *string `yaml:"name,omitempty"   json:"name,omitempty"`
	Output    *string `yaml:"output,omitempty" json:"output,omitempty"`
	IsActive  bool    `yaml:"is_active"        json:"is_active"`
	IsFocused bool    `yaml:"is_focused"       json:"is_focused"`
	IsHidden  bool    `yaml:"is_hidden"        json:"is_hidden"`
}

// Label returns a short human-readable name for diagnostics.
func (w Workspace) Label() string {
	if w.Name != nil && *w.Name != "" {
		return *w.Name
	}
	return strconv.FormatUint(w.ID, 10)
}
