package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/action"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/config"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/launch"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/output"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/platform"
)

// newLauncher builds the process launcher; tests replace it.
var newLauncher = func(l *logger.Logger) launch.Runner { return launch.New(l) }

// compositor is the connection opened by the current run, closed on exit.
var compositor platform.Compositor

func closeSession() {
	if compositor != nil {
		if err := compositor.Close(); err != nil {
			log.Warn("closing compositor connection", "error", err.Error())
		}
		compositor = nil
	}
	log.Close()
}

// loadConfig loads the file named by --config, or the default location.
func loadConfig() (*config.Config, error) {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	log.Debug("loading config", "path", path)
	return config.Load(path)
}

// loadApp loads the config and looks up the named application.
func loadApp(name string) (*model.Application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Find(name)
}

func connect() (platform.Compositor, error) {
	if compositor != nil {
		return compositor, nil
	}
	c, err := platform.NewCompositor(log)
	if err != nil {
		return nil, err
	}
	compositor = c
	return c, nil
}

type actionFunc func(o *action.Orchestrator, ctx context.Context, app *model.Application) (action.Outcome, error)

// runAction returns the RunE shared by the per-application commands.
func runAction(fn actionFunc, needsCompositor bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(args[0])
		if err != nil {
			return err
		}

		var client platform.Compositor
		if needsCompositor {
			if client, err = connect(); err != nil {
				return err
			}
		}
		orch := action.New(client, newLauncher(log), log)

		out, err := fn(orch, cmd.Context(), app)
		if err != nil {
			return err
		}
		if printResult, _ := rootCmd.PersistentFlags().GetBool("print"); printResult {
			return output.Print(output.ActionResult{
				OK:        true,
				Action:    out.Command,
				App:       out.App,
				Decision:  string(out.Decision),
				Window:    out.WindowID,
				Workspace: out.WorkspaceID,
			})
		}
		return nil
	}
}
