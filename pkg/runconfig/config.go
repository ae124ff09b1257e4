// Package runconfig provides the run configuration for a phenotools CLI
// invocation.
//
// Configuration can be loaded from:
//   - Environment variables (recommended for containerized runs)
//   - YAML configuration file
//   - Programmatic defaults
//
// Environment Variables:
//
//	PHENOTOOLS_ONTOLOGY_PATH    - Path to the OBO-graph JSON ontology file
//	PHENOTOOLS_ANNOTATION_PATH  - Path to the annotation TSV file
//	PHENOTOOLS_TARGET_TERM      - Target term id for the descendants analysis
//	PHENOTOOLS_WINDOW_START     - Lower bound of the analysis date window
//	PHENOTOOLS_WINDOW_END       - Upper bound of the analysis date window
//	PHENOTOOLS_STRICT           - Fail the build on any invalid edge (default: false)
package runconfig

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full set of knobs a phenotools run needs: where the
// ontology and annotation inputs live, the analysis window, the optional
// descendants-analysis target, the configured top-level category ids,
// and the builder's leniency mode.
type Config struct {
	OntologyPath   string   `yaml:"ontology_path"`
	AnnotationPath string   `yaml:"annotation_path"`
	TargetTerm     string   `yaml:"target_term"`
	WindowStart    string   `yaml:"window_start"`
	WindowEnd      string   `yaml:"window_end"`
	TopLevelTerms  []string `yaml:"top_level_terms"`
	Strict         bool     `yaml:"strict"`
}

// DefaultConfig returns a configuration with an empty target term (top-level
// mode) and lenient edge filtering.
func DefaultConfig() *Config {
	return &Config{
		Strict: false,
	}
}

// LoadFromEnv builds a configuration purely from environment variables,
// layered over DefaultConfig.
func LoadFromEnv() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PHENOTOOLS_ONTOLOGY_PATH"); v != "" {
		cfg.OntologyPath = v
	}
	if v := os.Getenv("PHENOTOOLS_ANNOTATION_PATH"); v != "" {
		cfg.AnnotationPath = v
	}
	if v := os.Getenv("PHENOTOOLS_TARGET_TERM"); v != "" {
		cfg.TargetTerm = v
	}
	if v := os.Getenv("PHENOTOOLS_WINDOW_START"); v != "" {
		cfg.WindowStart = v
	}
	if v := os.Getenv("PHENOTOOLS_WINDOW_END"); v != "" {
		cfg.WindowEnd = v
	}
	if v := os.Getenv("PHENOTOOLS_TOP_LEVEL_TERMS"); v != "" {
		cfg.TopLevelTerms = strings.Split(v, ",")
	}
	if v := os.Getenv("PHENOTOOLS_STRICT"); v != "" {
		cfg.Strict = parseBool(v, cfg.Strict)
	}

	return cfg
}

func parseBool(s string, defaultVal bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultVal
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads config from file, or returns default if the
// file doesn't exist or fails to parse.
func LoadConfigOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFromEnvOrFile loads config from an optional YAML file, then
// overrides with any environment variables present. An empty filePath
// skips the file stage.
func LoadFromEnvOrFile(filePath string) *Config {
	var cfg *Config
	if filePath != "" {
		cfg = LoadConfigOrDefault(filePath)
	} else {
		cfg = DefaultConfig()
	}

	if v := os.Getenv("PHENOTOOLS_ONTOLOGY_PATH"); v != "" {
		cfg.OntologyPath = v
	}
	if v := os.Getenv("PHENOTOOLS_ANNOTATION_PATH"); v != "" {
		cfg.AnnotationPath = v
	}
	if v := os.Getenv("PHENOTOOLS_TARGET_TERM"); v != "" {
		cfg.TargetTerm = v
	}
	if v := os.Getenv("PHENOTOOLS_WINDOW_START"); v != "" {
		cfg.WindowStart = v
	}
	if v := os.Getenv("PHENOTOOLS_WINDOW_END"); v != "" {
		cfg.WindowEnd = v
	}
	if v := os.Getenv("PHENOTOOLS_TOP_LEVEL_TERMS"); v != "" {
		cfg.TopLevelTerms = strings.Split(v, ",")
	}
	if v := os.Getenv("PHENOTOOLS_STRICT"); v != "" {
		cfg.Strict = parseBool(v, cfg.Strict)
	}

	return cfg
}
