package models

import "time"

// OffendingLine is a single CR+LF terminated line found during inspection.
type OffendingLine struct {
	Index int    `json:"index"` // 0-based line index within the file
	Raw   []byte `json:"raw"`
}

// ScanResult is the outcome of inspecting a single file.
type ScanResult struct {
	Path          string          `json:"path"`
	HasCR         bool            `json:"has_cr"`
	Unreadable    bool            `json:"unreadable"`
	Err           error           `json:"-"`
	LinesExamined int             `json:"lines_examined"`
	Lines         []OffendingLine `json:"lines,omitempty"` // populated in verbose runs only
}

// Finding records one file that contained CR+LF line endings.
type Finding struct {
	Path    string          `json:"path"`
	Lines   []OffendingLine `json:"lines,omitempty"`
	Cleaned bool            `json:"cleaned"`
	Skipped bool            `json:"skipped"` // declined in safe mode
}

// RunSummary contains the complete results of one run.
type RunSummary struct {
	// Summary
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	ScanPath  string        `json:"scan_path"`
	Mode      string        `json:"mode"` // inspect or clean
	Version   string        `json:"version"`

	ScannedFiles int `json:"scanned_files"`
	CRFiles      int `json:"cr_files"`
	CleanedFiles int `json:"cleaned_files"`
	SkippedFiles int `json:"skipped_files"`

	Findings []*Finding `json:"findings"`

	// Errors
	ReadErrors int      `json:"read_errors"`
	ErrorFiles []string `json:"error_files,omitempty"`
}

// AddFinding adds a finding to the summary
func (r *RunSummary) AddFinding(f *Finding) {
	r.Findings = append(r.Findings, f)
	r.CRFiles++
	if f.Cleaned {
		r.CleanedFiles++
	}
	if f.Skipped {
		r.SkippedFiles++
	}
}

// AddError records a file that could not be read.
func (r *RunSummary) AddError(path string) {
	r.ReadErrors++
	r.ErrorFiles = append(r.ErrorFiles, path)
}
