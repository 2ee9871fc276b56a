package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/Heatstealer/crsweep/pkg/models"
)

// generateText generates a plain text report
func (g *Generator) generateText(summary *models.RunSummary, outputFile string) error {
	var b strings.Builder

	b.WriteString("CRSWEEP REPORT\n")
	b.WriteString("==============\n\n")
	fmt.Fprintf(&b, "Path:      %s\n", summary.ScanPath)
	fmt.Fprintf(&b, "Mode:      %s\n", summary.Mode)
	fmt.Fprintf(&b, "Started:   %s\n", summary.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Duration:  %s\n", FormatDuration(summary.Duration))
	fmt.Fprintf(&b, "Version:   %s\n\n", summary.Version)

	fmt.Fprintf(&b, "Files scanned:  %d\n", summary.ScannedFiles)
	fmt.Fprintf(&b, "CR+LF files:    %d\n", summary.CRFiles)
	fmt.Fprintf(&b, "Cleaned:        %d\n", summary.CleanedFiles)
	fmt.Fprintf(&b, "Skipped:        %d\n", summary.SkippedFiles)
	fmt.Fprintf(&b, "Read errors:    %d\n\n", summary.ReadErrors)

	if len(summary.Findings) > 0 {
		b.WriteString("FINDINGS\n")
		b.WriteString("--------\n")
		for i, finding := range summary.Findings {
			fmt.Fprintf(&b, "[%d] %s (%s)\n", i+1, finding.Path, statusLabel(finding, summary.Mode))
			for _, line := range finding.Lines {
				fmt.Fprintf(&b, "    LINE #%d: %q\n", line.Index, line.Raw)
			}
		}
		b.WriteString("\n")
	}

	if len(summary.ErrorFiles) > 0 {
		b.WriteString("UNREADABLE FILES\n")
		b.WriteString("----------------\n")
		for _, path := range summary.ErrorFiles {
			fmt.Fprintf(&b, "  %s\n", path)
		}
	}

	return os.WriteFile(outputFile, []byte(b.String()), 0644)
}
