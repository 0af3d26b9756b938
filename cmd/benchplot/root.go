// cmd/benchplot/root.go
package benchplot

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base Cobra command for the benchplot application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "benchplot",
	Short: "Micro-benchmarks rendered as interactive HTML plots",
	Long: `benchplot runs micro-benchmark suites and renders their results into a
single interactive HTML document of Plotly box or violin plots.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
}
