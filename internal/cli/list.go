/*
PURPOSE:
  Defines the 'list' subcommand.
  Shows which inputs a run would process, without computing anything.

REQUIREMENTS:
  Implementation-discovered:
  - Useful validation step before a full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Calculator.Plan()

ERROR HANDLING:
  - Unresolvable inputs are reported by Plan as warnings.

USAGE:
  rectcalc list -i ./rectangles
*/

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/daryltucker/rectcalc/internal/config"
	"github.com/daryltucker/rectcalc/internal/engine"
	"github.com/spf13/cobra"
)

var listInput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the inputs a run would process",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if listInput != "" {
			cfg.Input = listInput
		}

		// Plan only reads the input side, so the output is left unresolved.
		plan := engine.New(config.Settings{Config: *cfg}).Plan()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Branch: %s\n", plan.Branch)
		if plan.Branch == engine.BranchInline {
			fmt.Fprintf(out, "- inline (length=%q, width=%q)\n", cfg.Length, cfg.Width)
			return nil
		}
		for _, s := range plan.Sources {
			if plan.Dir != "" {
				s = filepath.Join(plan.Dir, s)
			}
			fmt.Fprintf(out, "- %s\n", s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listInput, "input", "i", "", "Input .json file or directory of .json files")
}
