package core

import (
	"fmt"
	"os"
	"time"

	"github.com/Heatstealer/crsweep/internal/cleaner"
	"github.com/Heatstealer/crsweep/internal/config"
	"github.com/Heatstealer/crsweep/internal/filesystem"
	"github.com/Heatstealer/crsweep/internal/filter"
	"github.com/Heatstealer/crsweep/internal/inspector"
	"github.com/Heatstealer/crsweep/pkg/models"
	"go.uber.org/zap"
)

// Version is stamped into run summaries and reports.
const Version = "0.0.1"

// Finder drives the walk -> inspect -> clean pipeline
type Finder struct {
	config    *config.Config
	logger    *zap.Logger
	walker    *filesystem.Walker
	inspector *inspector.Inspector
	cleaner   *cleaner.Cleaner
}

// NewFinder creates a new finder instance
func NewFinder(cfg *config.Config, logger *zap.Logger) *Finder {
	return &Finder{
		config:    cfg,
		logger:    logger,
		walker:    filesystem.NewWalker(filter.New(cfg, ""), logger),
		inspector: inspector.NewInspector(logger),
		cleaner:   cleaner.NewCleaner(logger),
	}
}

// SetConfirmCallback sets the safe mode confirmation callback
func (f *Finder) SetConfirmCallback(cb cleaner.ConfirmFunc) {
	f.cleaner.SetConfirmCallback(cb)
}

// Run resolves path and executes one sweep. A directory is walked with the
// extension filter applied; a single file bypasses the walker and filter
// entirely and is inspected (verbose) and/or rewritten (unless inspect-only)
// regardless of its extension. A nonexistent path is a fatal error.
func (f *Finder) Run(path string) (*models.RunSummary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("can't find path: %s: %w", path, err)
	}

	summary := &models.RunSummary{
		StartTime: time.Now(),
		ScanPath:  path,
		Mode:      f.config.Mode(),
		Version:   Version,
	}

	f.logger.Info("Starting sweep",
		zap.String("path", path),
		zap.String("mode", summary.Mode),
		zap.Bool("verbose", f.config.Verbose),
		zap.Bool("safe_mode", f.config.SafeMode))

	if info.IsDir() {
		f.find(path, summary)
	} else {
		f.single(path, summary)
	}

	summary.EndTime = time.Now()
	summary.Duration = summary.EndTime.Sub(summary.StartTime)

	f.logger.Info("Sweep completed",
		zap.Duration("duration", summary.Duration),
		zap.Int("files_scanned", summary.ScannedFiles),
		zap.Int("cr_files", summary.CRFiles),
		zap.Int("cleaned", summary.CleanedFiles))

	return summary, nil
}

// find is a single linear pass over the tree. Each file's outcome is
// independent: a failure on one file never aborts the run.
func (f *Finder) find(root string, summary *models.RunSummary) {
	for path := range f.walker.Walk(root) {
		result := f.inspector.Inspect(path, f.config.Verbose)
		summary.ScannedFiles++

		if result.Unreadable {
			summary.AddError(path)
			continue
		}
		if !result.HasCR {
			continue
		}

		finding := &models.Finding{Path: path, Lines: result.Lines}
		if !f.config.OnlyInspect {
			f.clean(finding, summary)
		}
		summary.AddFinding(finding)
	}
}

// single handles a directly named file: inspect when verbose, rewrite when
// not inspect-only. The rewrite runs even without a prior CR hit; a clean
// file comes out byte-identical.
func (f *Finder) single(path string, summary *models.RunSummary) {
	var result models.ScanResult
	if f.config.Verbose {
		result = f.inspector.Inspect(path, true)
		summary.ScannedFiles++
		if result.Unreadable {
			summary.AddError(path)
		}
	}

	finding := &models.Finding{Path: path, Lines: result.Lines}
	if !f.config.OnlyInspect {
		f.clean(finding, summary)
	}
	if result.HasCR {
		summary.AddFinding(finding)
	}
}

// clean rewrites the finding's file and records the outcome on it.
func (f *Finder) clean(finding *models.Finding, summary *models.RunSummary) {
	cleaned, err := f.cleaner.Clean(finding.Path, f.config.SafeMode)
	if err != nil {
		fmt.Printf("Can't rewrite file: %s.\n%v\n", finding.Path, err)
		f.logger.Warn("Failed to rewrite file",
			zap.String("path", finding.Path),
			zap.Error(err))
		summary.AddError(finding.Path)
		return
	}

	finding.Cleaned = cleaned
	finding.Skipped = !cleaned && f.config.SafeMode
}
