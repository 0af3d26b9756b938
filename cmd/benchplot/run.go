// cmd/benchplot/run.go
package benchplot

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/benchplot/cli"
	"github.com/mwiater/benchplot/internal/suite"
)

// runCmd executes the built-in demo suite (element-wise float32
// arithmetic over L1- and L2-sized slices) and optionally renders the
// plots into an HTML report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo benchmark suite",
	Long: `The 'run' subcommand executes the built-in cache-size-aware arithmetic
suite. With --renderto the results are additionally rendered into an
interactive HTML report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := suite.LoadConfig(viper.GetString("config"))
		if err != nil {
			return err
		}
		applyRunFlags(cmd, &cfg)

		var summaries []suite.Series
		if noTUI, _ := cmd.Flags().GetBool("no-tui"); noTUI {
			summaries, err = cli.RunSuitePlain(cfg)
		} else {
			summaries, err = cli.RunSuite(cfg)
		}
		if err != nil {
			return err
		}

		for _, s := range summaries {
			fmt.Println(cli.FormatSummary(s))
		}
		if cfg.RenderTo != "" {
			fmt.Printf("Rendered to %s\n", cfg.RenderTo)
		}
		return nil
	},
}

// applyRunFlags overrides cfg with every run flag the user set
// explicitly, so flags win over the config file.
func applyRunFlags(cmd *cobra.Command, cfg *suite.Config) {
	if cmd.Flags().Changed("renderto") {
		cfg.RenderTo, _ = cmd.Flags().GetString("renderto")
	}
	if cmd.Flags().Changed("plot") {
		cfg.Plot, _ = cmd.Flags().GetString("plot")
	}
	if cmd.Flags().Changed("legend") {
		cfg.Legend, _ = cmd.Flags().GetBool("legend")
	}
	if cmd.Flags().Changed("show-epochs") {
		cfg.ShowEpochs, _ = cmd.Flags().GetBool("show-epochs")
	}
	if cmd.Flags().Changed("rangemode") {
		cfg.RangeMode, _ = cmd.Flags().GetString("rangemode")
	}
	if cmd.Flags().Changed("epochs") {
		cfg.Epochs, _ = cmd.Flags().GetInt("epochs")
	}
}

func init() {
	runCmd.Flags().String("config", "", "path to a JSON suite configuration file")
	runCmd.Flags().String("renderto", "", "render the plots into this HTML file")
	runCmd.Flags().String("plot", "violin", "plot type: violin or box")
	runCmd.Flags().Bool("legend", true, "show the Plotly legend side panel")
	runCmd.Flags().Bool("show-epochs", false, "append epoch counts to series labels")
	runCmd.Flags().String("rangemode", "tozero", "y-axis rangemode; empty lets Plotly auto-range")
	runCmd.Flags().Int("epochs", 11, "measurement batches per series")
	runCmd.Flags().Bool("no-tui", false, "plain line-by-line progress output")

	// The key in viper will be "config"
	viper.BindPFlag("config", runCmd.Flags().Lookup("config"))

	rootCmd.AddCommand(runCmd)
}
