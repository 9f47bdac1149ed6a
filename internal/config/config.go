// Package config resolves the Scytale configuration from defaults,
// optional YAML files, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the settings resolved from defaults, optional files,
// and environment overrides.
type Config struct {
	OutputDir string         `yaml:"output_dir"`
	RecipeDir string         `yaml:"recipe_dir"`
	AuditLog  string         `yaml:"audit_log"`
	Analysis  AnalysisConfig `yaml:"analysis"`
}

// AnalysisConfig bounds the Kasiski examination and key search.
type AnalysisConfig struct {
	MinPatternLength int `yaml:"min_pattern_length"`
	MaxPatternLength int `yaml:"max_pattern_length"`
	MinKeySize       int `yaml:"min_key_size"`
	MaxKeySize       int `yaml:"max_key_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: "out",
		RecipeDir: "recipes",
		AuditLog:  "",
		Analysis: AnalysisConfig{
			MinPatternLength: 3,
			MaxPatternLength: 6,
			MinKeySize:       2,
			MaxKeySize:       12,
		},
	}
}

// Load resolves the configuration using defaults, configuration files,
// and environment overrides. The lookup order for configuration files
// is:
//  1. ~/.scytale/config.yml
//  2. ./scytale.yml
//
// Environment variables prefixed with SCYTALE_ have the highest
// precedence.
func Load() (Config, error) {
	cfg := Default()

	if err := loadHomeConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLocalConfig(&cfg); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects analysis bounds that no examination could satisfy.
func (c Config) Validate() error {
	a := c.Analysis
	if a.MinPatternLength < 2 {
		return fmt.Errorf("min_pattern_length must be at least 2, got %d", a.MinPatternLength)
	}
	if a.MaxPatternLength < a.MinPatternLength {
		return fmt.Errorf("max_pattern_length %d is below min_pattern_length %d",
			a.MaxPatternLength, a.MinPatternLength)
	}
	if a.MinKeySize < 1 {
		return fmt.Errorf("min_key_size must be at least 1, got %d", a.MinKeySize)
	}
	if a.MaxKeySize < a.MinKeySize {
		return fmt.Errorf("max_key_size %d is below min_key_size %d", a.MaxKeySize, a.MinKeySize)
	}
	return nil
}

func loadHomeConfig(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("determine home directory: %w", err)
	}
	return loadFile(cfg, filepath.Join(home, ".scytale", "config.yml"))
}

func loadLocalConfig(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	return loadFile(cfg, filepath.Join(wd, "scytale.yml"))
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := applyFileConfig(cfg, data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// fileConfig mirrors Config with pointer fields so absent keys leave
// the current value untouched.
type fileConfig struct {
	OutputDir *string             `yaml:"output_dir"`
	RecipeDir *string             `yaml:"recipe_dir"`
	AuditLog  *string             `yaml:"audit_log"`
	Analysis  *fileAnalysisConfig `yaml:"analysis"`
}

type fileAnalysisConfig struct {
	MinPatternLength *int `yaml:"min_pattern_length"`
	MaxPatternLength *int `yaml:"max_pattern_length"`
	MinKeySize       *int `yaml:"min_key_size"`
	MaxKeySize       *int `yaml:"max_key_size"`
}

func applyFileConfig(cfg *Config, data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.OutputDir != nil {
		cfg.OutputDir = strings.TrimSpace(*fc.OutputDir)
	}
	if fc.RecipeDir != nil {
		cfg.RecipeDir = strings.TrimSpace(*fc.RecipeDir)
	}
	if fc.AuditLog != nil {
		cfg.AuditLog = strings.TrimSpace(*fc.AuditLog)
	}
	if fc.Analysis != nil {
		if fc.Analysis.MinPatternLength != nil {
			cfg.Analysis.MinPatternLength = *fc.Analysis.MinPatternLength
		}
		if fc.Analysis.MaxPatternLength != nil {
			cfg.Analysis.MaxPatternLength = *fc.Analysis.MaxPatternLength
		}
		if fc.Analysis.MinKeySize != nil {
			cfg.Analysis.MinKeySize = *fc.Analysis.MinKeySize
		}
		if fc.Analysis.MaxKeySize != nil {
			cfg.Analysis.MaxKeySize = *fc.Analysis.MaxKeySize
		}
	}

	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val := strings.TrimSpace(os.Getenv("SCYTALE_OUT")); val != "" {
		cfg.OutputDir = val
	}
	if val := strings.TrimSpace(os.Getenv("SCYTALE_RECIPES")); val != "" {
		cfg.RecipeDir = val
	}
	if val := strings.TrimSpace(os.Getenv("SCYTALE_AUDIT_LOG")); val != "" {
		cfg.AuditLog = val
	}
	applyEnvInt("SCYTALE_MIN_PATTERN", &cfg.Analysis.MinPatternLength)
	applyEnvInt("SCYTALE_MAX_PATTERN", &cfg.Analysis.MaxPatternLength)
	applyEnvInt("SCYTALE_MIN_KEY", &cfg.Analysis.MinKeySize)
	applyEnvInt("SCYTALE_MAX_KEY", &cfg.Analysis.MaxKeySize)
}

func applyEnvInt(name string, target *int) {
	val := strings.TrimSpace(os.Getenv(name))
	if val == "" {
		return
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return
	}
	*target = parsed
}
