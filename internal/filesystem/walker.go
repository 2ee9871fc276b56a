package filesystem

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/Heatstealer/crsweep/internal/filter"
	"go.uber.org/zap"
)

// Walker walks the filesystem and finds files to scan
type Walker struct {
	filter *filter.PathFilter
	logger *zap.Logger
}

// NewWalker creates a new filesystem walker
func NewWalker(f *filter.PathFilter, logger *zap.Logger) *Walker {
	return &Walker{
		filter: f,
		logger: logger,
	}
}

// Walk returns a lazy sequence of candidate file paths under root, in
// traversal order. Directories rejected by the filter are pruned: nothing
// beneath them is yielded or descended into. The sequence is finite,
// forward-only and not restartable; consumers may stop early by breaking
// out of the range loop.
//
// A nonexistent root yields an empty sequence. Traversal errors are logged
// and skipped, never surfaced to the consumer.
func (w *Walker) Walk(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if !w.filter.IsPathAllowed(path) {
					w.logger.Debug("Skipping excluded directory", zap.String("path", path))
					return fs.SkipDir
				}
				return nil
			}

			if !w.filter.IsFileAllowed(d.Name()) {
				return nil
			}

			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
