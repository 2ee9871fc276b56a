package filter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Heatstealer/crsweep/internal/config"
)

// PathFilter decides which directories are descended into and which files
// are scanned. It is pure: no I/O, no side effects.
type PathFilter struct {
	config   *config.Config
	selfName string
}

// New creates a path filter from an immutable config. selfName is the
// tool's own file name; a file with that exact name is never scanned, so a
// recursive run cannot rewrite the tool itself. Empty selfName defaults to
// the running executable's base name.
func New(cfg *config.Config, selfName string) *PathFilter {
	if selfName == "" {
		selfName = SelfName()
	}
	return &PathFilter{
		config:   cfg,
		selfName: selfName,
	}
}

// IsPathAllowed returns false if any excluded folder name occurs as a
// substring anywhere in dir.
func (f *PathFilter) IsPathAllowed(dir string) bool {
	for _, ign := range f.config.Exclude {
		if strings.Contains(dir, ign) {
			return false
		}
	}
	return true
}

// IsFileAllowed returns false if name is the tool's own file name or its
// extension is not a target extension.
func (f *PathFilter) IsFileAllowed(name string) bool {
	if name == f.selfName {
		return false
	}
	return f.config.IsTargetExtension(filepath.Ext(name))
}

// SelfName returns the base name of the running executable.
func SelfName() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}
	return filepath.Base(exe)
}
