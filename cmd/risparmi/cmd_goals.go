package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"risparmi/internal/core"
)

var addDescription string

// addCmd creates a new goal
var addCmd = &cobra.Command{
	Use:   "add NAME TARGET",
	Short: "Create a savings goal",
	Long: `Create a named savings goal with a target amount.

The target accepts dot or comma decimals (1200.50 or 1200,50) and must
be positive.`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

// saveCmd adds savings toward a goal
var saveCmd = &cobra.Command{
	Use:   "save ID AMOUNT",
	Short: "Add savings toward a goal",
	Long: `Add an amount to a goal's savings.

The addition is refused when it exceeds what the goal still needs; the
goal can never be over-funded.`,
	Args: cobra.ExactArgs(2),
	RunE: runSave,
}

// targetCmd changes a goal's target
var targetCmd = &cobra.Command{
	Use:   "target ID AMOUNT",
	Short: "Change a goal's target amount",
	Long: `Change a goal's target amount.

Lowering the target below the current savings caps the savings at the
new target, so the goal shows as achieved rather than over 100%.`,
	Args: cobra.ExactArgs(2),
	RunE: runTarget,
}

// rmCmd deletes a goal
var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

// listCmd shows all goals
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all goals, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

// summaryCmd shows aggregate progress
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show overall progress across goals",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "optional goal description")
	rootCmd.AddCommand(addCmd, saveCmd, targetCmd, rmCmd, listCmd, summaryCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	target, err := parseAmount(args[1])
	if err != nil {
		return fmt.Errorf("target %q: %w", args[1], err)
	}
	g, err := tracker.Goals.Create(cmd.Context(), args[0], addDescription, target)
	if err != nil {
		return err
	}
	fmt.Print(renderer().GoalCard(g))
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return fmt.Errorf("amount %q: %w", args[1], err)
	}
	g, err := tracker.Goals.AddSavings(cmd.Context(), args[0], amount)
	if err != nil {
		var exceeds *core.ExceedsRemainingError
		if errors.As(err, &exceeds) {
			return fmt.Errorf("only %s still needed for this goal", renderer().Amount(exceeds.Remaining))
		}
		return err
	}
	fmt.Print(renderer().GoalCard(g))
	return nil
}

func runTarget(cmd *cobra.Command, args []string) error {
	target, err := parseAmount(args[1])
	if err != nil {
		return fmt.Errorf("target %q: %w", args[1], err)
	}
	g, err := tracker.Goals.EditTarget(cmd.Context(), args[0], target)
	if err != nil {
		return err
	}
	fmt.Print(renderer().GoalCard(g))
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	tracker.Goals.Delete(cmd.Context(), args[0])
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	r := renderer()
	goals := tracker.Goals.List()
	if len(goals) == 0 {
		fmt.Print(r.SummaryLine(core.Summary{}))
		return nil
	}
	for _, g := range goals {
		fmt.Print(r.GoalCard(g))
	}
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	fmt.Print(renderer().SummaryLine(tracker.Goals.Aggregate()))
	return nil
}

// parseAmount converts user input to money, mapping parse failures to
// the core's invalid-amount error.
func parseAmount(s string) (core.Money, error) {
	cents, err := core.ParseDecimalToCents(s)
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Cents: cents}, nil
}
