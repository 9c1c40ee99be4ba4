package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/logger"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/output"
	_ "github.com/GoodbyeNJN/niri-app-hotkey/internal/platform/niri"
	"github.com/GoodbyeNJN/niri-app-hotkey/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "niri-app-hotkey",
	Short: "Launch, show, hide and toggle application windows in niri",
	Long: `Bind one hotkey per application: toggle launches the application when it has
no window, hides its window to the hidden workspace when it is focused, and
brings it to the current workspace otherwise.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// log is the run's logger, set up by the root command before any subcommand.
var log = logger.Nop()

func Execute() {
	err := rootCmd.Execute()
	closeSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default $XDG_CONFIG_HOME/niri/niri-app-hotkey.yaml)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default warn, or $"+logger.EnvLevel+")")
	rootCmd.PersistentFlags().String("log-file", "", "Also append logs to this file")
	rootCmd.PersistentFlags().Bool("print", false, "Print a result after show, hide, activate, toggle and launch")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput = output.IsTerminal(os.Stdout)

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = os.Getenv(logger.EnvLevel)
		}
		opts := []logger.Option{
			logger.WithLevel(logger.ParseLevel(level)),
			logger.WithConsole(cmd.ErrOrStderr()),
		}
		if path, _ := rootCmd.PersistentFlags().GetString("log-file"); path != "" {
			opts = append(opts, logger.WithFile(path))
		}
		l, err := logger.New(opts...)
		if err != nil {
			return err
		}
		log = l
		log.Debug("starting", "command", cmd.Name(), "args", args, "version", version.Version)
		return nil
	}
}
