package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/lintpipe/internal/engine"
	"github.com/gnolang/lintpipe/lint"
)

var rulesQuiet bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active rules and their severities",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		infos, err := activeRules(cfgFile)
		if err != nil {
			logger.Error("Failed to load rule configuration", zap.Error(err))
			os.Exit(1)
		}
		printRules(cmd.OutOrStdout(), infos, rulesQuiet)
	},
}

func init() {
	rulesCmd.Flags().BoolVarP(&rulesQuiet, "quiet", "q", false, "Only print rule names")
}

// activeRules builds an engine from the resolved configuration and
// reports which rules it would run.
func activeRules(configPath string) ([]engine.RuleInfo, error) {
	var cfg lint.Config
	if path := resolveConfigFile(configPath); path != "" {
		loaded, err := lint.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	eng, err := engine.New(engine.Options{Config: cfg})
	if err != nil {
		return nil, err
	}
	return eng.Rules(), nil
}

func printRules(w io.Writer, infos []engine.RuleInfo, quiet bool) {
	if quiet {
		for _, info := range infos {
			fmt.Fprintln(w, info.Name)
		}
		return
	}

	bold := color.New(color.Bold)
	width := 0
	for _, info := range infos {
		if len(info.Name) > width {
			width = len(info.Name)
		}
	}
	for _, info := range infos {
		bold.Fprint(w, info.Name)
		fmt.Fprintf(w, "%*s  %s\n", width-len(info.Name), "", info.Severity)
	}
}
