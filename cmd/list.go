package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/config"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/match"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/output"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list [name]",
	Short: "List windows and the configured applications that select them",
	Long: `List every window in the current snapshot, annotated with the configured
applications whose rules select it. With a name, list only that application's
candidate windows; more than one means its rules are ambiguous.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "With a name, list every window and mark the candidates")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	switch {
	case err == nil:
	case len(args) == 0 && errors.Is(err, fs.ErrNotExist):
		log.Warn("no config file, listing windows without applications", "error", err.Error())
		cfg = &config.Config{}
	default:
		return err
	}

	apps := cfg.Applications
	result := output.ListResult{}
	if len(args) == 1 {
		app, err := cfg.Find(args[0])
		if err != nil {
			return err
		}
		apps = []model.Application{*app}
		result.App = app.Name
	}

	client, err := connect()
	if err != nil {
		return err
	}
	snap, err := platform.NewSnapshot(cmd.Context(), client)
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	result.Windows = annotate(snap, apps, result.App == "" || all)
	return output.Print(result)
}

// annotate pairs each window with the applications that select it. Windows
// no application selects are kept only when keepUnselected is set.
func annotate(snap *model.Snapshot, apps []model.Application, keepUnselected bool) []output.ListedWindow {
	selectedBy := make(map[uint64][]string)
	for _, app := range apps {
		for _, w := range match.Candidates(snap.Windows, app.Matches, app.Excludes) {
			selectedBy[w.ID] = append(selectedBy[w.ID], app.Name)
		}
	}

	listed := []output.ListedWindow{}
	for _, w := range snap.Windows {
		names := selectedBy[w.ID]
		if len(names) == 0 && !keepUnselected {
			continue
		}
		entry := output.ListedWindow{Window: w, Apps: names}
		if w.WorkspaceID != nil {
			if ws := snap.WorkspaceByID(*w.WorkspaceID); ws != nil {
				entry.Workspace = ws.Label()
			}
		}
		listed = append(listed, entry)
	}
	return listed
}
