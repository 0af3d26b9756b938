// cmd/benchplot/options.go
package benchplot

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"

	"github.com/mwiater/benchplot/internal/suite"
)

// optionsCmd prints the effective suite configuration after defaults
// and the optional config file are merged, so users can see exactly
// what 'run' would execute.
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the effective suite configuration",
	Long: `The 'options' subcommand resolves the suite configuration (built-in
defaults plus an optional --config file) and prints the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		cfg, err := suite.LoadConfig(path)
		if err != nil {
			return err
		}

		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			pp.Println(cfg)
			return nil
		}

		fmt.Printf("plot:                 %s\n", cfg.Plot)
		fmt.Printf("legend:               %t\n", cfg.Legend)
		fmt.Printf("show epochs:          %t\n", cfg.ShowEpochs)
		fmt.Printf("rangemode:            %s\n", cfg.RangeMode)
		fmt.Printf("epochs:               %d\n", cfg.Epochs)
		fmt.Printf("min epoch iterations: %d\n", cfg.MinEpochIterations)
		fmt.Printf("warmup:               %d\n", cfg.Warmup)
		fmt.Printf("L1 budget:            %d bytes\n", cfg.L1Bytes)
		fmt.Printf("L2 budget:            %d bytes\n", cfg.L2Bytes)
		return nil
	},
}

func init() {
	optionsCmd.Flags().String("config", "", "path to a JSON suite configuration file")
	optionsCmd.Flags().Bool("debug", false, "dump the full configuration structure")

	rootCmd.AddCommand(optionsCmd)
}
