package inspector

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Heatstealer/crsweep/pkg/models"
	"go.uber.org/zap"
)

var crlf = []byte("\r\n")

// Inspector detects CR+LF line endings in files
type Inspector struct {
	logger *zap.Logger
}

// NewInspector creates a new inspector
func NewInspector(logger *zap.Logger) *Inspector {
	return &Inspector{
		logger: logger,
	}
}

// Inspect reads path as raw bytes and reports whether any line ends with
// CR+LF. A line is a maximal byte run ending in '\n' or at end of file.
//
// In verbose mode every offending line is printed and recorded, so the
// whole file is always read. Otherwise the scan stops at the first hit;
// LinesExamined reflects the short-circuit.
//
// An unreadable file is not an error to the caller: the result carries
// Unreadable=true and HasCR=false, and the cause is logged.
func (ins *Inspector) Inspect(path string, verbose bool) models.ScanResult {
	result := models.ScanResult{Path: path}

	f, err := os.Open(path)
	if err != nil {
		return ins.unreadable(result, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for i := 0; ; i++ {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			result.LinesExamined++
			if bytes.HasSuffix(line, crlf) {
				result.HasCR = true
				if !verbose {
					return result
				}
				result.Lines = append(result.Lines, models.OffendingLine{Index: i, Raw: line})
				fmt.Printf("Win32 style file: %s. LINE #%d: %q\n", path, i, line)
			}
		}
		if err == io.EOF {
			return result
		}
		if err != nil {
			return ins.unreadable(result, err)
		}
	}
}

// unreadable degrades a failed read to "no CR found" after logging it.
func (ins *Inspector) unreadable(result models.ScanResult, err error) models.ScanResult {
	fmt.Printf("Can't read file: %s.\n%v\n", result.Path, err)
	ins.logger.Warn("Failed to read file",
		zap.String("path", result.Path),
		zap.Error(err))

	result.HasCR = false
	result.Lines = nil
	result.Unreadable = true
	result.Err = err
	return result
}
