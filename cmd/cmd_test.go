package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/action"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/config"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/launch"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/output"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform/fake"
)

const testConfig = `
applications:
  - name: terminal
    spawn: ["foot"]
    matches:
      - app-id: "^foot$"
  - name: browser
    spawn-sh: "firefox --new-window"
    matches:
      - app-id: "firefox"
    excludes:
      - title: "Picture-in-Picture"
`

func str(s string) *string { return &s }
func id(n uint64) *uint64 { return &n }

func snapshotCompositor() *fake.Compositor {
	return &fake.Compositor{
		Windows: []model.Window{
			{ID: 1, AppID: str("foot"), Title: str("zsh"), WorkspaceID: id(2)},
			{ID: 2, AppID: str("firefox"), Title: str("Docs"), WorkspaceID: id(1), IsFocused: true},
			{ID: 3, AppID: str("firefox"), Title: str("Picture-in-Picture"), WorkspaceID: id(1)},
			{ID: 4, AppID: str("mpv"), WorkspaceID: id(1)},
		},
		Workspaces: []model.Workspace{
			{ID: 1, Idx: 1, Name: str("main"), IsActive: true, IsFocused: true},
			{ID: 2, Idx: 2},
			{ID: 9, Idx: 3, Name: str("hidden"), IsHidden: true},
		},
	}
}

type harness struct {
	compositor *fake.Compositor
	launcher   *fake.Launcher
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	configPath string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{compositor: snapshotCompositor(), launcher: &fake.Launcher{}}
	h.configPath = filepath.Join(t.TempDir(), "niri-app-hotkey.yaml")
	require.NoError(t, os.WriteFile(h.configPath, []byte(testConfig), 0o644))

	oldCompositor, oldLauncher, oldOut := platform.NewCompositorFunc, newLauncher, output.Out
	platform.NewCompositorFunc = func(*logger.Logger) (platform.Compositor, error) { return h.compositor, nil }
	newLauncher = func(*logger.Logger) launch.Runner { return h.launcher }
	output.Out = &h.stdout
	t.Cleanup(func() {
		platform.NewCompositorFunc, newLauncher, output.Out = oldCompositor, oldLauncher, oldOut
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return h
}

// run executes the root command with the harness config prepended.
func (h *harness) run(args ...string) error {
	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}
	rootCmd.SetArgs(append([]string{"--config", h.configPath}, args...))
	rootCmd.SetOut(&h.stdout)
	rootCmd.SetErr(&h.stderr)
	err := rootCmd.Execute()
	closeSession()
	return err
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Value.Type() == "stringSlice" || f.Value.Type() == "stringArray" {
			return
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"validate", "launch", "show", "hide", "activate", "toggle", "list"}
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_Flags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	tests := []struct {
		name     string
		flagType string
	}{
		{"config", "string"},
		{"format", "string"},
		{"log-level", "string"},
		{"log-file", "string"},
		{"print", "bool"},
	}
	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	h := newHarness(t)
	err := h.run("--format", "xml", "validate")
	require.ErrorContains(t, err, "unsupported output format")
}

func TestValidate(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--format", "json", "validate"))

	var result output.ValidateResult
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	assert.True(t, result.OK)
	assert.Equal(t, h.configPath, result.Config)
	assert.Equal(t, []output.AppSummary{
		{Name: "terminal", Launch: "spawn", Matches: 1},
		{Name: "browser", Launch: "spawn-sh", Matches: 1, Excludes: 1},
	}, result.Applications)
	assert.Zero(t, h.compositor.Queries)
}

func TestValidate_InvalidConfig(t *testing.T) {
	h := newHarness(t)
	bad := "applications:\n  - name: x\n    spawn: [a]\n    spawn-sh: b\n"
	require.NoError(t, os.WriteFile(h.configPath, []byte(bad), 0o644))
	err := h.run("validate")
	require.ErrorIs(t, err, config.ErrSpawnConflict)
}

func TestShowCommand_MovesFromOtherWorkspace(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("show", "terminal"))
	assert.Equal(t, []fake.Call{{Name: "MoveWindowToWorkspace", WindowID: 1, WorkspaceID: 1, Focus: true}}, h.compositor.Calls)
	assert.Empty(t, h.stdout.String(), "actions are quiet without --print")
	assert.True(t, h.compositor.Closed)
}

func TestToggleCommand_Print(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--format", "json", "--print", "toggle", "browser"))
	assert.Equal(t, []fake.Call{{Name: "MoveWindowToWorkspace", WindowID: 2, WorkspaceID: 9}}, h.compositor.Calls)

	var result output.ActionResult
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	assert.Equal(t, "toggle", result.Action)
	assert.Equal(t, string(action.DecisionHide), result.Decision)
	require.NotNil(t, result.Workspace)
	assert.Equal(t, uint64(9), *result.Workspace)
}

func TestToggleCommand_LaunchesWhenNothingMatches(t *testing.T) {
	h := newHarness(t)
	h.compositor.Windows = nil
	require.NoError(t, h.run("toggle", "terminal"))
	assert.Equal(t, []string{"terminal"}, h.launcher.Launched)
	assert.Empty(t, h.compositor.Calls)
}

func TestLaunchCommand_SkipsCompositor(t *testing.T) {
	h := newHarness(t)
	platform.NewCompositorFunc = nil
	require.NoError(t, h.run("launch", "browser"))
	assert.Equal(t, []string{"browser"}, h.launcher.Launched)
}

func TestHideCommand_NotFocused(t *testing.T) {
	h := newHarness(t)
	err := h.run("hide", "terminal")
	require.ErrorIs(t, err, action.ErrNotFocused)
	assert.Empty(t, h.compositor.Calls)
}

func TestActivateCommand_OtherWorkspace(t *testing.T) {
	h := newHarness(t)
	err := h.run("activate", "terminal")
	require.ErrorIs(t, err, action.ErrNotInFocusedWorkspace)
}

func TestActionCommand_UnknownApplication(t *testing.T) {
	h := newHarness(t)
	err := h.run("show", "editor")
	require.ErrorIs(t, err, config.ErrUnknownApplication)
	assert.Zero(t, h.compositor.Queries)
}

func TestActionCommand_RequiresName(t *testing.T) {
	h := newHarness(t)
	require.Error(t, h.run("toggle"))
}

func TestListCommand(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--format", "json", "list"))

	var result output.ListResult
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	require.Len(t, result.Windows, 4)
	assert.Equal(t, []string{"terminal"}, result.Windows[0].Apps)
	assert.Equal(t, "2", result.Windows[0].Workspace)
	assert.Equal(t, []string{"browser"}, result.Windows[1].Apps)
	assert.Empty(t, result.Windows[2].Apps, "excluded window")
	assert.Equal(t, "main", result.Windows[3].Workspace)
}

func TestListCommand_SingleApplication(t *testing.T) {
	h := newHarness(t)
	h.compositor.Windows = append(h.compositor.Windows, model.Window{ID: 5, AppID: str("firefox"), Title: str("Mail"), WorkspaceID: id(2)})
	require.NoError(t, h.run("--format", "json", "list", "browser"))

	var result output.ListResult
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	assert.Equal(t, "browser", result.App)
	ids := make([]uint64, len(result.Windows))
	for i, w := range result.Windows {
		ids[i] = w.ID
	}
	assert.Equal(t, []uint64{2, 5}, ids)
}

func TestListCommand_WithoutConfig(t *testing.T) {
	h := newHarness(t)
	h.configPath = filepath.Join(t.TempDir(), "missing.yaml")
	require.NoError(t, h.run("--format", "json", "list"))

	var result output.ListResult
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &result))
	assert.Len(t, result.Windows, 4)
}
