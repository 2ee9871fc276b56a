package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".py" {
		t.Errorf("Default extensions = %v, want [.py]", cfg.Extensions)
	}

	expectedExclude := []string{"site-packages", "node_modules", ".git", "venv", ".env", ".vscode", ".idea"}
	if len(cfg.Exclude) != len(expectedExclude) {
		t.Fatalf("Default exclude count = %d, want %d", len(cfg.Exclude), len(expectedExclude))
	}
	for i, want := range expectedExclude {
		if cfg.Exclude[i] != want {
			t.Errorf("Exclude[%d] = %q, want %q", i, cfg.Exclude[i], want)
		}
	}

	if cfg.OnlyInspect || cfg.Verbose || cfg.SafeMode {
		t.Error("Policy flags default to false")
	}
	if cfg.ReportFormat != "" {
		t.Errorf("Default report_format = %q, want empty", cfg.ReportFormat)
	}
}

func TestIsTargetExtension(t *testing.T) {
	cfg := &Config{Extensions: []string{".py", ".sh"}}

	tests := []struct {
		ext      string
		expected bool
	}{
		{".py", true},
		{".sh", true},
		{".txt", false},
		{"py", false},  // leading dot is part of the comparison
		{".PY", false}, // case-sensitive
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := cfg.IsTargetExtension(tt.ext); got != tt.expected {
				t.Errorf("IsTargetExtension(%q) = %v, want %v", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestMode(t *testing.T) {
	if got := (&Config{OnlyInspect: true}).Mode(); got != "inspect" {
		t.Errorf("Mode() = %q, want inspect", got)
	}
	if got := (&Config{}).Mode(); got != "clean" {
		t.Errorf("Mode() = %q, want clean", got)
	}
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `extensions:
  - .sh
  - .bash
exclude:
  - build
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error = %v", err)
	}

	if len(rules.Extensions) != 2 || rules.Extensions[0] != ".sh" {
		t.Errorf("Rules extensions = %v, want [.sh .bash]", rules.Extensions)
	}
	if len(rules.Exclude) != 1 || rules.Exclude[0] != "build" {
		t.Errorf("Rules exclude = %v, want [build]", rules.Exclude)
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules("/nonexistent/rules.yaml"); err == nil {
		t.Error("LoadRules() expected error for missing file, got nil")
	}
}

func TestLoadRulesInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("extensions: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	if _, err := LoadRules(path); err == nil {
		t.Error("LoadRules() expected error for invalid YAML, got nil")
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name           string
		rules          *Rules
		wantExtensions []string
		wantExclude    []string
	}{
		{"Nil rules", nil, []string{".py"}, []string{".git"}},
		{"Empty rules keep defaults", &Rules{}, []string{".py"}, []string{".git"}},
		{"Extensions only", &Rules{Extensions: []string{".sh"}}, []string{".sh"}, []string{".git"}},
		{"Both lists", &Rules{Extensions: []string{".sh"}, Exclude: []string{"build"}}, []string{".sh"}, []string{"build"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Extensions: []string{".py"}, Exclude: []string{".git"}}
			cfg.Apply(tt.rules)

			if len(cfg.Extensions) != len(tt.wantExtensions) || cfg.Extensions[0] != tt.wantExtensions[0] {
				t.Errorf("Extensions = %v, want %v", cfg.Extensions, tt.wantExtensions)
			}
			if len(cfg.Exclude) != len(tt.wantExclude) || cfg.Exclude[0] != tt.wantExclude[0] {
				t.Errorf("Exclude = %v, want %v", cfg.Exclude, tt.wantExclude)
			}
		})
	}
}
