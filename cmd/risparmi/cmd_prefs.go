package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

// currencyCmd toggles the display currency
var currencyCmd = &cobra.Command{
	Use:   "currency",
	Short: "Toggle the display currency (INR/USD)",
	Long: `Toggle the display currency between INR and USD.

This changes the label shown next to amounts only; no conversion is
applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tracker.Prefs.ToggleCurrency(cmd.Context())
		fmt.Printf("Currency set to %s\n", p.Currency)
		return nil
	},
}

// themeCmd toggles the display theme
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle the display theme (dark/light)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tracker.Prefs.ToggleTheme(cmd.Context())
		fmt.Printf("Theme set to %s\n", p.Theme)
		return nil
	},
}

// resetCmd wipes all data after confirmation
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every goal and restore default preferences",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(currencyCmd, themeCmd, resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes && !confirm("This deletes every goal and resets preferences. Continue? [y/N] ") {
		fmt.Println("Aborted.")
		return nil
	}
	tracker.ResetAll(cmd.Context())
	fmt.Println("All data reset.")
	return nil
}

// confirm collects the destructive-action confirmation here in the CLI;
// the service mutates unconditionally once called.
func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
