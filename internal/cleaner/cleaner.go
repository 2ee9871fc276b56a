package cleaner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
)

// ConfirmFunc is called in safe mode before a file is rewritten.
// Returns true to proceed, false to skip the file.
type ConfirmFunc func(path string) bool

// Cleaner rewrites CR+LF line endings to LF in place
type Cleaner struct {
	logger  *zap.Logger
	confirm ConfirmFunc
}

// NewCleaner creates a new cleaner
func NewCleaner(logger *zap.Logger) *Cleaner {
	return &Cleaner{
		logger: logger,
	}
}

// SetConfirmCallback sets the safe mode confirmation callback
func (c *Cleaner) SetConfirmCallback(cb ConfirmFunc) {
	c.confirm = cb
}

// Clean rewrites path in place, replacing every CR+LF with LF. Lines
// without CR+LF are written back byte-identical. The file is truncated to
// the number of bytes written, since the new content can only shrink.
//
// In safe mode the confirmation callback decides per file; a declined or
// missing callback skips the file unmodified. The returned bool reports
// whether the file was actually rewritten.
//
// The rewrite uses no temporary file and no backup: a crash mid-rewrite
// can leave the file in a mixed or truncated state.
func (c *Cleaner) Clean(path string, safeMode bool) (bool, error) {
	if safeMode {
		if c.confirm == nil || !c.confirm(path) {
			c.logger.Debug("Skipped by user", zap.String("path", path))
			return false, nil
		}
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return false, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	var written int64
	for _, line := range lines {
		n, err := f.Write(bytes.ReplaceAll(line, crlf, lf))
		if err != nil {
			return false, fmt.Errorf("failed to write file: %w", err)
		}
		written += int64(n)
	}

	if err := f.Truncate(written); err != nil {
		return false, fmt.Errorf("failed to truncate file: %w", err)
	}

	c.logger.Debug("Rewrote file", zap.String("path", path), zap.Int64("bytes", written))
	return true, nil
}

// readLines reads all lines from r, preserving terminators.
func readLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReader(r)

	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
