package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config file and summarize its applications",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result := output.ValidateResult{OK: true, Config: cfg.Path}
	for _, app := range cfg.Applications {
		result.Applications = append(result.Applications, output.AppSummary{
			Name:     app.Name,
			Launch:   app.LaunchKind(),
			Matches:  len(app.Matches),
			Excludes: len(app.Excludes),
		})
	}
	return output.Print(result)
}
