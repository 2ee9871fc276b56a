package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Heatstealer/crsweep/internal/config"
	"github.com/Heatstealer/crsweep/internal/core"
	"github.com/Heatstealer/crsweep/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGray  = "\033[38;5;245m"
)

var logger *zap.Logger

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rootCmd creates the crsweep command
func rootCmd() *cobra.Command {
	var (
		all          bool
		filePath     string
		verbose      bool
		safeMode     bool
		onlyInspect  bool
		reportFormat string
		outputFile   string
		rulesFile    string
	)

	cmd := &cobra.Command{
		Use:   "crsweep",
		Short: "Find and clean Windows-style CR+LF line endings",
		Long: `crsweep scans a directory tree for text files with Windows-style
CR+LF line endings and rewrites them in place to Unix-style LF. Stray
carriage returns break shebang lines:

    /usr/bin/env: 'python\r': No such file or directory

Directory runs scan only the configured target extensions and skip
ignored folders. Naming a single file with -f bypasses both filters.`,
		Version:       core.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags at all: print usage and exit without side effects
			if cmd.Flags().NFlag() == 0 {
				return cmd.Help()
			}

			if all && filePath != "" {
				return errors.New("can not setup -a and -f flags for one command")
			}
			if !all && filePath == "" {
				return errors.New("either -a or -f is required")
			}

			// Inspect mode implies verbose
			if onlyInspect {
				verbose = true
			}

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				cfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = cfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			// Resolve the sweep root
			root := filePath
			if all {
				root, err = installDir()
				if err != nil {
					return fmt.Errorf("failed to resolve install directory: %w", err)
				}
			}

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			if rulesFile != "" {
				rules, err := config.LoadRules(rulesFile)
				if err != nil {
					return err
				}
				cfg.Apply(rules)
			}

			// Override config with CLI flags
			cfg.OnlyInspect = onlyInspect
			cfg.Verbose = verbose
			cfg.SafeMode = safeMode
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}

			// Create finder
			finder := core.NewFinder(cfg, logger)
			finder.SetConfirmCallback(confirmClean)

			// Run sweep
			summary, err := finder.Run(root)
			if err != nil {
				logger.Error("Sweep failed", zap.Error(err))
				return err
			}

			// Generate report
			generator := report.NewGenerator(cfg, logger)
			reportPath, err := generator.Generate(summary)
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return err
			}
			if reportPath != "" {
				fmt.Printf("  %sReport:%s %s\n", colorGray, colorReset, reportPath)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Sweep the tool's own install directory")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Directory or single file to sweep")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Report every offending line, not just the first")
	cmd.Flags().BoolVarP(&safeMode, "safe_mode", "s", false, "Ask before rewriting each file")
	cmd.Flags().BoolVarP(&onlyInspect, "inspect", "i", false, "Inspection only, never rewrite (implies -v)")
	cmd.Flags().StringVarP(&reportFormat, "report", "r", "", "Report format: json, txt, md (default: console output)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Report output file path")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file overriding extension/ignore lists")

	return cmd
}

// installDir returns the directory containing the crsweep executable.
func installDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// confirmClean asks on stdin whether a file should be rewritten.
func confirmClean(path string) bool {
	fmt.Printf("%sClear CR from: %s? [Y / N]%s ", colorBold, path, colorReset)

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return strings.HasPrefix(input, "y")
}
