package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tbruckner/algebra"
)

var (
	solveLaTeX    bool
	solveEval     bool
	solveSimplify bool
)

var solveCmd = &cobra.Command{
	Use:   "solve \"<lhs = rhs>\" <variable>",
	Short: "Isolate a variable in an equation",
	Long: `Rearranges the equation so the named variable stands alone on the
left-hand side. The variable must occur exactly once, on one side only.

Examples:
  algebra solve "x + 3 = 10" x
  algebra solve "i * r = v" r --evaluate --simplify`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveLaTeX, "latex", false, "also print the LaTeX form")
	solveCmd.Flags().BoolVar(&solveEval, "evaluate", false, "also evaluate the right side if it is constant")
	solveCmd.Flags().BoolVar(&solveSimplify, "simplify", false, "fold constants in the result")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	eq, err := algebra.ParseEquation(args[0])
	if err != nil {
		return err
	}
	solved, err := algebra.Solve(eq, args[1])
	if err != nil {
		return err
	}
	if solveSimplify {
		solved = algebra.SimplifyEquation(solved)
	}

	fmt.Println(resultStyle.Render(solved.Render()))
	if solveLaTeX {
		fmt.Println(labelStyle.Render("latex: ") + solved.LaTeX())
	}
	if solveEval {
		v, err := algebra.Evaluate(solved.Right)
		if err != nil {
			return fmt.Errorf("right side is not constant: %w", err)
		}
		fmt.Println(labelStyle.Render("value: ") + fmt.Sprintf("%v", v))
	}
	return nil
}
