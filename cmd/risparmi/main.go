package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"risparmi/internal/cli"
	applog "risparmi/internal/log"
	"risparmi/internal/render"
	"risparmi/internal/services"
)

var (
	tracker *services.TrackerService
	logger  *applog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "risparmi",
	Short: "risparmi - local savings goal tracker",
	Long: `risparmi tracks named savings goals in your local profile.

Create goals with a target amount, add savings toward them and watch
per-goal and overall progress. All data stays on this machine.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		tracker, logger, err = cli.InitTracker(cmd.Context())
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tracker != nil {
			if err := tracker.Close(); err != nil {
				logger.Error("Failed to close store", applog.FieldError, err)
			}
		}
	},
}

// renderer builds a Renderer for the current preferences.
func renderer() *render.Renderer {
	return render.New(tracker.Prefs.Current())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
