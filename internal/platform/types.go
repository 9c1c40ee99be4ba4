package platform

// MoveOptions describes a window move between workspaces.
type MoveOptions struct {
	WindowID    uint64
	WorkspaceID uint64
	// Focus switches to the target workspace and focuses the window.
	Focus bool
}
