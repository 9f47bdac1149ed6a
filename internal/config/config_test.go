package config

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputDir != "out" {
		t.Errorf("unexpected output dir %q", cfg.OutputDir)
	}
	if cfg.Analysis.MinPatternLength != 3 || cfg.Analysis.MaxPatternLength != 6 {
		t.Errorf("unexpected pattern bounds %+v", cfg.Analysis)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := Default()
	data := []byte(`
output_dir: /tmp/scytale-out
analysis:
  max_key_size: 20
`)
	if err := applyFileConfig(&cfg, data); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if cfg.OutputDir != "/tmp/scytale-out" {
		t.Errorf("output dir not applied: %q", cfg.OutputDir)
	}
	if cfg.Analysis.MaxKeySize != 20 {
		t.Errorf("max key size not applied: %d", cfg.Analysis.MaxKeySize)
	}
	// Absent keys keep their defaults.
	if cfg.RecipeDir != "recipes" {
		t.Errorf("recipe dir should keep default, got %q", cfg.RecipeDir)
	}
	if cfg.Analysis.MinKeySize != 2 {
		t.Errorf("min key size should keep default, got %d", cfg.Analysis.MinKeySize)
	}
}

func TestApplyFileConfigRejectsBadYAML(t *testing.T) {
	cfg := Default()
	if err := applyFileConfig(&cfg, []byte("output_dir: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCYTALE_OUT", "/env/out")
	t.Setenv("SCYTALE_RECIPES", "/env/recipes")
	t.Setenv("SCYTALE_MAX_KEY", "30")
	t.Setenv("SCYTALE_MIN_KEY", "not-a-number")

	cfg := Default()
	applyEnvOverrides(&cfg)

	if cfg.OutputDir != "/env/out" {
		t.Errorf("output dir override not applied: %q", cfg.OutputDir)
	}
	if cfg.RecipeDir != "/env/recipes" {
		t.Errorf("recipe dir override not applied: %q", cfg.RecipeDir)
	}
	if cfg.Analysis.MaxKeySize != 30 {
		t.Errorf("max key size override not applied: %d", cfg.Analysis.MaxKeySize)
	}
	// Unparseable integers are ignored rather than fatal.
	if cfg.Analysis.MinKeySize != 2 {
		t.Errorf("bad integer should keep default, got %d", cfg.Analysis.MinKeySize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"pattern min too small", func(c *Config) { c.Analysis.MinPatternLength = 1 }},
		{"pattern bounds inverted", func(c *Config) { c.Analysis.MaxPatternLength = 2 }},
		{"key min too small", func(c *Config) { c.Analysis.MinKeySize = 0 }},
		{"key bounds inverted", func(c *Config) { c.Analysis.MaxKeySize = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
