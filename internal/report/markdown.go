package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/Heatstealer/crsweep/pkg/models"
)

// generateMarkdown generates a Markdown report
func (g *Generator) generateMarkdown(summary *models.RunSummary, outputFile string) error {
	var b strings.Builder

	b.WriteString("# CRSWEEP Report\n\n")
	fmt.Fprintf(&b, "- **Path**: `%s`\n", summary.ScanPath)
	fmt.Fprintf(&b, "- **Mode**: %s\n", summary.Mode)
	fmt.Fprintf(&b, "- **Started**: %s\n", summary.StartTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- **Duration**: %s\n", FormatDuration(summary.Duration))
	fmt.Fprintf(&b, "- **Version**: %s\n\n", summary.Version)

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| Files scanned | %d |\n", summary.ScannedFiles)
	fmt.Fprintf(&b, "| CR+LF files | %d |\n", summary.CRFiles)
	fmt.Fprintf(&b, "| Cleaned | %d |\n", summary.CleanedFiles)
	fmt.Fprintf(&b, "| Skipped | %d |\n", summary.SkippedFiles)
	fmt.Fprintf(&b, "| Read errors | %d |\n\n", summary.ReadErrors)

	if len(summary.Findings) > 0 {
		b.WriteString("## Findings\n\n")
		for i, finding := range summary.Findings {
			fmt.Fprintf(&b, "%d. `%s` — %s\n", i+1, finding.Path, statusLabel(finding, summary.Mode))
			for _, line := range finding.Lines {
				fmt.Fprintf(&b, "   - line %d: `%q`\n", line.Index, line.Raw)
			}
		}
		b.WriteString("\n")
	}

	if len(summary.ErrorFiles) > 0 {
		b.WriteString("## Unreadable files\n\n")
		for _, path := range summary.ErrorFiles {
			fmt.Fprintf(&b, "- `%s`\n", path)
		}
	}

	return os.WriteFile(outputFile, []byte(b.String()), 0644)
}
