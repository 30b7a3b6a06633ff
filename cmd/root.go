// Package cmd wires the lintpipe command line interface.
package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	timeout time.Duration

	logger *zap.Logger
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// defaultConfigFile is picked up from the working directory when no
// --config flag is given.
const defaultConfigFile = ".lintpipe.yaml"

var rootCmd = &cobra.Command{
	Use:              "lintpipe [paths...]",
	Short:            "lintpipe - a composable lint pipeline for Go source trees",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// one logger per invocation, tagged so interleaved watch reruns
		// stay attributable
		logger = newLogger(verbose).With(zap.String("run_id", uuid.NewString()[:8]))
	},
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'lintpipe' is entered
			_ = cmd.Help()
			return
		}
		// Format: lintpipe [path1 path2 ...] => behaves like the run subcommand
		runCmd.Run(runCmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// SetBuildInfo records the version stamped in by the release build.
func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// BuildInfo returns the stamped version, commit and build date.
func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file (default "+defaultConfigFile+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Abort the run after this duration")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}
