package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

func TestNewCompositor_Unsupported(t *testing.T) {
	orig := NewCompositorFunc
	NewCompositorFunc = nil
	defer func() { NewCompositorFunc = orig }()

	_, err := NewCompositor(nil)
	if err == nil {
		t.Fatal("expected error without a registered backend")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

type stubReader struct {
	windows       []model.Window
	workspaces    []model.Workspace
	windowsErr    error
	workspacesErr error
}

func (s stubReader) ListWindows(context.Context) ([]model.Window, error) {
	return s.windows, s.windowsErr
}

func (s stubReader) ListWorkspaces(context.Context) ([]model.Workspace, error) {
	return s.workspaces, s.workspacesErr
}

func TestNewSnapshot(t *testing.T) {
	r := stubReader{
		windows:    []model.Window{{ID: 1}, {ID: 2}},
		workspaces: []model.Workspace{{ID: 7, IsFocused: true}},
	}
	snap, err := NewSnapshot(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Windows) != 2 || len(snap.Workspaces) != 1 {
		t.Errorf("got %d windows and %d workspaces", len(snap.Windows), len(snap.Workspaces))
	}
}

func TestNewSnapshot_FailsOnEitherQuery(t *testing.T) {
	boom := errors.New("boom")
	for _, r := range []stubReader{{windowsErr: boom}, {workspacesErr: boom}} {
		if _, err := NewSnapshot(context.Background(), r); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	}
}
