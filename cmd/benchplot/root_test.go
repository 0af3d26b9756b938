// cmd/benchplot/root_test.go
package benchplot

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRoot_SubcommandsPresent(t *testing.T) {
	have := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		have[c.Name()] = true
	}
	for _, want := range []string{"run", "options"} {
		if !have[want] {
			t.Fatalf("missing subcommand %s", want)
		}
	}
}

func TestCommands_HaveDescriptions(t *testing.T) {
	var check func(*cobra.Command)
	check = func(cmd *cobra.Command) {
		if cmd.Short == "" || cmd.Long == "" {
			t.Fatalf("command %s missing Short/Long", cmd.Name())
		}
		for _, sc := range cmd.Commands() {
			check(sc)
		}
	}
	check(rootCmd)
}

func TestRun_FlagsRegistered(t *testing.T) {
	for _, name := range []string{
		"config", "renderto", "plot", "legend", "show-epochs",
		"rangemode", "epochs", "no-tui",
	} {
		if runCmd.Flags().Lookup(name) == nil {
			t.Errorf("run is missing the --%s flag", name)
		}
	}
}

func TestRun_FlagDefaultsMatchSuiteDefaults(t *testing.T) {
	if runCmd.Flags().Lookup("plot").DefValue != "violin" {
		t.Error("plot must default to violin")
	}
	if runCmd.Flags().Lookup("legend").DefValue != "true" {
		t.Error("legend must default to true")
	}
	if runCmd.Flags().Lookup("rangemode").DefValue != "tozero" {
		t.Error("rangemode must default to tozero")
	}
}
