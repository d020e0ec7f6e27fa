/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes one calculator run.

REQUIREMENTS:
  User-specified:
  - Construct the calculator from input, output, length, width and cores.
  - Unhandled failures are logged at ERROR; the exit code stays zero.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.
  - Logging is configured after overrides so --log-file applies.

ARCHITECTURE INTEGRATION:
  - Calls: internal/config.Resolve, internal/engine.Run
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Config, resolution and run errors (and panics) are logged, never returned.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Setup Logging -> Resolve -> Engine.Run.

USAGE:
  rectcalc run --length 355 --width 263
  rectcalc run -i ./rectangles -o ./result -c 4

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/daryltucker/rectcalc/internal/config"
	"github.com/daryltucker/rectcalc/internal/engine"
	"github.com/daryltucker/rectcalc/internal/output"
	"github.com/spf13/cobra"
)

var (
	inputOverride   string
	outputOverride  string
	lengthOverride  string
	widthOverride   string
	coresOverride   int
	logFileOverride string
	summaryOverride string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute perimeter and area",
	Long: `Computes perimeter and area for one or more rectangles.
The input decides the branch:
1. A .json file: that file is processed once.
2. A directory: every .json file in it is processed by a pool of workers.
3. Nothing: the inline --length and --width are used.

Without an output directory results are logged; with one, each input
produces <output>/<stem>.json.`,
	Example: `  # Inline, results in the log
  rectcalc run --length 355 --width 263

  # Whole directory with 4 workers
  rectcalc run -i ./rectangles -o ./result -c 4

  # Single file plus a CSV summary
  rectcalc run -i ./rectangles/r1.json -o ./result --summary summary.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			output.Logger.Error("Failed to load config", "path", cfgFile, "error", err)
			return nil
		}

		// 2. Overrides
		applyOverrides(cmd, cfg)

		// 3. Logging
		closer := output.Setup(output.LogOptions{File: cfg.LogFile})
		defer closer.Close()

		// 4. Execution
		runCalculator(cmd.Context(), *cfg)
		return nil
	},
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	if inputOverride != "" {
		cfg.Input = inputOverride
	}
	if outputOverride != "" {
		cfg.Output = outputOverride
	}
	if lengthOverride != "" {
		cfg.Length = lengthOverride
	}
	if widthOverride != "" {
		cfg.Width = widthOverride
	}
	if cmd.Flags().Changed("cores") {
		cfg.Cores = coresOverride
	}
	if logFileOverride != "" {
		cfg.LogFile = logFileOverride
	}
	if summaryOverride != "" {
		cfg.Summary = summaryOverride
	}
}

// runCalculator resolves cfg and runs it. Nothing escapes: errors and panics
// are logged at ERROR.
func runCalculator(ctx context.Context, cfg config.Config) {
	defer func() {
		if r := recover(); r != nil {
			output.Logger.Error("Unexpected failure", "error", fmt.Sprint(r))
		}
	}()

	cwd, err := os.Getwd()
	if err != nil {
		output.Logger.Error("Failed to determine working directory", "error", err)
		return
	}

	settings, warns := config.Resolve(cfg, cwd)
	for _, w := range warns {
		output.Logger.Warn("Configuration downgraded", "error", w)
	}

	if _, err := engine.New(settings).Run(ctx); err != nil {
		output.Logger.Error("Run aborted", "error", err)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&inputOverride, "input", "i", "", "Input .json file or directory of .json files")
	runCmd.Flags().StringVarP(&outputOverride, "output", "o", "", "Output directory for result files (empty logs results)")
	runCmd.Flags().StringVar(&lengthOverride, "length", "", "Inline length")
	runCmd.Flags().StringVar(&widthOverride, "width", "", "Inline width")
	runCmd.Flags().IntVarP(&coresOverride, "cores", "c", config.DefaultCores, "Number of workers for directory inputs")
	runCmd.Flags().StringVar(&logFileOverride, "log-file", "", "Rotating log file for warnings and errors")
	runCmd.Flags().StringVar(&summaryOverride, "summary", "", "Optional CSV summary of all results")
}
