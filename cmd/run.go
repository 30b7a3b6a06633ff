package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/lintpipe/lint"
	"github.com/gnolang/lintpipe/pipeline"
	"github.com/gnolang/lintpipe/scanner"
)

var (
	formatName     string
	outPath        string
	quiet          bool
	warnIgnored    bool
	watchMode      bool
	ignorePatterns []string
	ignoreFile     string
)

var runCmd = &cobra.Command{
	Use:   "run [paths...]",
	Short: "Lint files and report the findings",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		opts := runOptions{
			ConfigFile:     cfgFile,
			Format:         formatName,
			OutputPath:     outPath,
			Quiet:          quiet,
			WarnIgnored:    warnIgnored,
			IgnorePatterns: ignorePatterns,
			IgnoreFile:     ignoreFile,
			Progress:       true,
		}

		if watchMode {
			if err := watchAndRun(logger, args, opts); err != nil {
				logger.Error("watch failed", zap.Error(err))
				os.Exit(1)
			}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		summary, err := runLintProcess(ctx, logger, args, opts)
		if err != nil {
			logger.Error("lint run failed", zap.Error(err))
			os.Exit(1)
		}
		if summary.Errors+summary.Warnings > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&formatName, "format", "f", "stylish", "Report format (stylish, compact, json, unix)")
	runCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the report to a file instead of stdout")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Report errors only")
	runCmd.Flags().BoolVar(&warnIgnored, "warn-ignored", false, "Report files skipped by ignore patterns")
	runCmd.Flags().StringSliceVar(&ignorePatterns, "ignore-pattern", nil, "Additional ignore patterns (repeatable)")
	runCmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "File of ignore patterns, one per line")
	runCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Watch the given paths and relint on change")
}

// runOptions carries one run's settings into the testable process
// functions, decoupled from the flag variables.
type runOptions struct {
	ConfigFile     string
	Format         string
	OutputPath     string
	Quiet          bool
	WarnIgnored    bool
	Fix            bool
	DryRun         bool
	IgnorePatterns []string
	IgnoreFile     string
	Progress       bool
}

// runSummary aggregates what one pipeline run saw and did.
type runSummary struct {
	Files    int
	Errors   int
	Warnings int
	Fixed    int
}

// runLintProcess reads the requested files, runs them through the lint
// pipeline and renders the report. With Fix set, rewritten files are
// written back to disk (or merely announced under DryRun).
func runLintProcess(ctx context.Context, logger *zap.Logger, paths []string, opts runOptions) (runSummary, error) {
	var summary runSummary

	files, err := loadFiles(ctx, logger, paths, opts.Progress)
	if err != nil {
		return summary, err
	}
	if len(files) == 0 {
		logger.Info("no matching files", zap.Strings("paths", paths))
		return summary, nil
	}

	lintStage, err := pipeline.Lint(lint.Options{
		Logger:          logger,
		ConfigFile:      resolveConfigFile(opts.ConfigFile),
		Quiet:           opts.Quiet,
		WarnFileIgnored: opts.WarnIgnored,
		Fix:             opts.Fix,
		IgnorePatterns:  opts.IgnorePatterns,
		IgnoreFile:      opts.IgnoreFile,
	})
	if err != nil {
		return summary, err
	}

	stages := []pipeline.Stage{lintStage}
	if opts.Fix {
		stages = append(stages, writeBackStage(logger, opts.DryRun, &summary))
	}

	tally, err := pipeline.OnResults(func(results *lint.Results) error {
		summary.Files = results.Len()
		summary.Errors = results.ErrorCount
		summary.Warnings = results.WarningCount
		return nil
	})
	if err != nil {
		return summary, err
	}
	stages = append(stages, tally)

	var dest any = os.Stdout
	if opts.OutputPath != "" {
		dest = opts.OutputPath
	}
	report, err := pipeline.Format(opts.Format, dest)
	if err != nil {
		return summary, err
	}
	stages = append(stages, report)

	if err := pipeline.RunFiles(ctx, files, stages...); err != nil {
		return summary, err
	}

	logger.Debug("run complete",
		zap.Int("files", summary.Files),
		zap.Int("errors", summary.Errors),
		zap.Int("warnings", summary.Warnings),
		zap.Int("fixed", summary.Fixed))
	return summary, nil
}

// writeBackStage persists fixed contents onto the original path. Records
// without applied fixes pass through untouched.
func writeBackStage(logger *zap.Logger, dryRun bool, summary *runSummary) pipeline.Stage {
	return pipeline.StageFunc(func(_ context.Context, f *pipeline.File) (*pipeline.File, error) {
		if f.Result == nil || !f.Result.Fixed {
			return f, nil
		}
		summary.Fixed++

		if dryRun {
			fmt.Printf("Would fix issues in %s\n", f.Result.FilePath)
			return f, nil
		}

		if err := os.WriteFile(f.Path, f.Contents, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Path, err)
		}
		logger.Info("fixed issues", zap.String("path", f.Result.FilePath))
		return f, nil
	})
}

// loadFiles discovers the source files under paths and reads them
// concurrently. Each worker fills its own slot so the discovery order
// survives the fan-out.
func loadFiles(ctx context.Context, logger *zap.Logger, paths []string, progress bool) ([]*pipeline.File, error) {
	infos, err := scanner.New(".go").Scan(paths...)
	if err != nil {
		return nil, err
	}

	var totalBytes int64
	for _, info := range infos {
		totalBytes += info.Size
	}
	logger.Debug("discovered files",
		zap.Int("count", len(infos)),
		zap.Int64("bytes", totalBytes))

	var bar *progressbar.ProgressBar
	if progress && len(infos) > 1 {
		bar = newProgressBar(len(infos), "reading sources")
	}

	files := make([]*pipeline.File, len(infos))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, info := range infos {
		i, info := i, info
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			contents, err := os.ReadFile(info.Path)
			if err != nil {
				return fmt.Errorf("read %s: %w", info.Path, err)
			}
			files[i] = pipeline.NewFile(info.Path, contents)
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	return files, nil
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// resolveConfigFile falls back to the conventional file in the working
// directory when no explicit path was given.
func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}
