package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "algebra",
	Short: "Build, render and rearrange algebraic equations",
	Long: `algebra works on expression trees built from constants, variables
and the four arithmetic operations. Equations are rearranged by peeling
inverse operations until the requested variable stands alone.

Expressions use infix notation: "2.0 * x + 3", "(a + b) / c", "{v_1} - 4".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: ")+err.Error())
		return err
	}
	return nil
}
