package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Apply fixable findings to the source files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		opts := runOptions{
			ConfigFile:     cfgFile,
			Format:         formatName,
			OutputPath:     outPath,
			IgnorePatterns: ignorePatterns,
			IgnoreFile:     ignoreFile,
			Fix:            true,
			DryRun:         dryRun,
			Progress:       true,
		}

		summary, err := runLintProcess(ctx, logger, args, opts)
		if err != nil {
			logger.Error("fix run failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("fix complete",
			zap.Int("files", summary.Files),
			zap.Int("fixed", summary.Fixed),
			zap.Int("remaining", summary.Errors+summary.Warnings))
		if summary.Errors+summary.Warnings > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show which files would change without writing them")
	fixCmd.Flags().StringVarP(&formatName, "format", "f", "stylish", "Report format for the remaining findings")
	fixCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the report to a file instead of stdout")
	fixCmd.Flags().StringSliceVar(&ignorePatterns, "ignore-pattern", nil, "Additional ignore patterns (repeatable)")
	fixCmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "File of ignore patterns, one per line")
}
