package filter

import (
	"testing"

	"github.com/Heatstealer/crsweep/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Extensions: []string{".py"},
		Exclude:    []string{"site-packages", "node_modules", ".git", "venv", ".env", ".vscode", ".idea"},
	}
}

func TestIsPathAllowed(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"Plain directory", "/home/user/project", true},
		{"Git directory", "/home/user/project/.git", false},
		{"Nested under git", "/proj/.git/hooks", false},
		{"Node modules", "/proj/node_modules/pkg/lib", false},
		{"Virtualenv", "/proj/venv/lib/python3.12", false},
		{"Substring match mid-path", "/srv/site-packages-mirror/x", false},
		{"Editor settings", "/proj/.vscode", false},
		{"Root", "/", true},
		{"Empty", "", true},
	}

	f := New(testConfig(), "crsweep")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IsPathAllowed(tt.path); got != tt.expected {
				t.Errorf("IsPathAllowed(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsFileAllowed(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		expected bool
	}{
		{"Target extension", "script.py", true},
		{"Non-target extension", "notes.txt", false},
		{"No extension", "Makefile", false},
		{"Uppercase extension is not a match", "script.PY", false},
		{"Tool's own file name", "crsweep", false},
		{"Dotfile with target suffix", ".hidden.py", true},
	}

	f := New(testConfig(), "crsweep")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IsFileAllowed(tt.file); got != tt.expected {
				t.Errorf("IsFileAllowed(%q) = %v, want %v", tt.file, got, tt.expected)
			}
		})
	}
}

func TestIsFileAllowedSelfNameWithTargetExtension(t *testing.T) {
	// The self name wins even when the extension matches
	f := New(testConfig(), "cr_cleaner.py")
	if f.IsFileAllowed("cr_cleaner.py") {
		t.Error("IsFileAllowed() = true for the tool's own file name, want false")
	}
	if !f.IsFileAllowed("other.py") {
		t.Error("IsFileAllowed(other.py) = false, want true")
	}
}

func TestCustomLists(t *testing.T) {
	cfg := &config.Config{
		Extensions: []string{".sh", ".bash"},
		Exclude:    []string{"build"},
	}
	f := New(cfg, "crsweep")

	if !f.IsFileAllowed("run.sh") {
		t.Error("IsFileAllowed(run.sh) = false, want true")
	}
	if f.IsFileAllowed("run.py") {
		t.Error("IsFileAllowed(run.py) = true, want false")
	}
	if f.IsPathAllowed("/proj/build/out") {
		t.Error("IsPathAllowed(/proj/build/out) = true, want false")
	}
	if !f.IsPathAllowed("/proj/.git") {
		t.Error("IsPathAllowed(/proj/.git) = false, want true with custom exclude list")
	}
}
