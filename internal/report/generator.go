package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Heatstealer/crsweep/internal/config"
	"github.com/Heatstealer/crsweep/pkg/models"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[38;5;245m"
)

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.2fs", mins, secs)
}

// Generator generates run reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate emits a report for the run. With no format configured the
// summary is printed to the console and no file is written; otherwise the
// report path is returned.
func (g *Generator) Generate(summary *models.RunSummary) (string, error) {
	format := g.config.ReportFormat
	outputFile := g.config.OutputFile

	if format == "" {
		g.printConsole(summary)
		return "", nil
	}

	if outputFile == "" {
		timestamp := time.Now().Format("20060102-150405")
		switch format {
		case "json":
			outputFile = fmt.Sprintf("CRSWEEP-REPORT-%s.json", timestamp)
		case "txt", "text":
			outputFile = fmt.Sprintf("CRSWEEP-REPORT-%s.txt", timestamp)
		case "md", "markdown":
			outputFile = fmt.Sprintf("CRSWEEP-REPORT-%s.md", timestamp)
		default:
			return "", fmt.Errorf("unknown report format: %s", format)
		}
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	var err error
	switch format {
	case "json":
		err = g.generateJSON(summary, outputFile)
	case "txt", "text":
		err = g.generateText(summary, outputFile)
	case "md", "markdown":
		err = g.generateMarkdown(summary, outputFile)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}

	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	absPath, _ := filepath.Abs(outputFile)
	return absPath, nil
}

// printConsole prints the summary to stdout with colors
func (g *Generator) printConsole(summary *models.RunSummary) {
	fmt.Println()
	fmt.Printf("%s%sSWEEP COMPLETE%s\n", colorBold, colorGreen, colorReset)
	fmt.Println()

	fmt.Printf("  %sPath:%s      %s\n", colorGray, colorReset, summary.ScanPath)
	fmt.Printf("  %sMode:%s      %s\n", colorGray, colorReset, summary.Mode)
	fmt.Printf("  %sFiles:%s     %d\n", colorGray, colorReset, summary.ScannedFiles)
	fmt.Printf("  %sDuration:%s  %s\n", colorGray, colorReset, FormatDuration(summary.Duration))
	fmt.Println()

	if summary.CRFiles == 0 {
		fmt.Printf("  %s%s✓ No CR+LF line endings found%s\n", colorBold, colorGreen, colorReset)
		fmt.Println()
		return
	}

	fmt.Printf("  %s%s⚠ CR+LF FILES: %d%s\n", colorBold, colorYellow, summary.CRFiles, colorReset)
	fmt.Println()

	for i, finding := range summary.Findings {
		status := statusLabel(finding, summary.Mode)
		fmt.Printf("  %s[%d]%s %s  %s%s%s\n", colorBold, i+1, colorReset, finding.Path, colorGray, status, colorReset)
		for _, line := range finding.Lines {
			fmt.Printf("      %sLINE #%d:%s %q\n", colorGray, line.Index, colorReset, line.Raw)
		}
	}

	if summary.ReadErrors > 0 {
		fmt.Println()
		fmt.Printf("  %s%s✗ Read errors: %d%s\n", colorBold, colorRed, summary.ReadErrors, colorReset)
	}
	fmt.Println()
}

// statusLabel describes what happened to a finding.
func statusLabel(f *models.Finding, mode string) string {
	switch {
	case f.Cleaned:
		return "cleaned"
	case f.Skipped:
		return "skipped"
	case mode == "inspect":
		return "found"
	default:
		return "not cleaned"
	}
}
