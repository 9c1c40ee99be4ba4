package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/action"
)

var launchCmd = &cobra.Command{
	Use:   "launch <name>",
	Short: "Start the application and wait for it to exit",
	Long:  "Start the application with its spawn or spawn-sh command. Does not talk to the compositor.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAction((*action.Orchestrator).Launch, false),
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Bring the application's window to the focused workspace and focus it",
	Args:  cobra.ExactArgs(1),
	RunE:  runAction((*action.Orchestrator).Show, true),
}

var hideCmd = &cobra.Command{
	Use:   "hide <name>",
	Short: "Move the application's focused window to the hidden workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runAction((*action.Orchestrator).Hide, true),
}

var activateCmd = &cobra.Command{
	Use:   "activate <name>",
	Short: "Focus the application's window if it is on the focused workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runAction((*action.Orchestrator).Activate, true),
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <name>",
	Short: "Launch, hide or bring forward the application's window",
	Long: `Toggle picks exactly one effect from the current state:
  no matching window     launch the application
  window is focused      hide it to the hidden workspace
  otherwise              bring it to the focused workspace and focus it`,
	Args: cobra.ExactArgs(1),
	RunE: runAction((*action.Orchestrator).Toggle, true),
}

func init() {
	rootCmd.AddCommand(launchCmd, showCmd, hideCmd, activateCmd, toggleCmd)
}
