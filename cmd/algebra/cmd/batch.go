package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tbruckner/algebra"
	"gopkg.in/yaml.v3"
)

// batchProblem is one entry of a YAML problem file:
//
//	- equation: "x + 3 = 10"
//	  variable: x
//	- equation: "2 * y = 8"
//	  variable: y
type batchProblem struct {
	Equation string `yaml:"equation"`
	Variable string `yaml:"variable"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Solve a YAML list of equations",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var problems []batchProblem
	if err := yaml.Unmarshal(data, &problems); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	failures := 0
	for i, p := range problems {
		eq, err := algebra.ParseEquation(p.Equation)
		if err == nil {
			var solved algebra.Equation
			solved, err = algebra.Solve(eq, p.Variable)
			if err == nil {
				fmt.Printf("%3d  %s\n", i+1, resultStyle.Render(solved.Render()))
				continue
			}
		}
		failures++
		fmt.Printf("%3d  %s\n", i+1, errorStyle.Render(fmt.Sprintf("%s: %v", p.Equation, err)))
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d problems failed", failures, len(problems))
	}
	return nil
}
