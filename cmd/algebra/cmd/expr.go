package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tbruckner/algebra"
)

var renderCmd = &cobra.Command{
	Use:   "render \"<expression>\"",
	Short: "Print the canonical infix form of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := algebra.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(e.Render())
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval \"<expression>\"",
	Short: "Evaluate a constant expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := algebra.Parse(args[0])
		if err != nil {
			return err
		}
		v, err := algebra.Evaluate(e)
		if err != nil {
			return err
		}
		fmt.Println(resultStyle.Render(fmt.Sprintf("%v", v)))
		return nil
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify \"<expression>\"",
	Short: "Fold constants and drop neutral elements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := algebra.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(algebra.Simplify(e).Render())
		return nil
	},
}

var latexCmd = &cobra.Command{
	Use:   "latex \"<expression>\"",
	Short: "Print the LaTeX form of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := algebra.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(algebra.LaTeX(e))
		return nil
	},
}

var variablesCmd = &cobra.Command{
	Use:   "variables \"<expression>\"",
	Short: "List the distinct variables of an expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := algebra.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(algebra.Variables(e), " "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd, evalCmd, simplifyCmd, latexCmd, variablesCmd)
}
