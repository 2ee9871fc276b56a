package report

import (
	"encoding/json"
	"os"

	"github.com/Heatstealer/crsweep/pkg/models"
)

// generateJSON generates a JSON report
func (g *Generator) generateJSON(summary *models.RunSummary, outputFile string) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(outputFile, data, 0644)
}
