package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Optional MySQL DSN for the run-history sink
	HistoryDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Filter   string
	FailFast bool
	Cases    bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:    DefaultProjectPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config, applies environment overrides and flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv loads .env from the project directory (missing file is fine)
// and applies environment overrides.
func (c *Config) ApplyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputJSONDir = dir
	}
	if file := os.Getenv(EnvOutputFile); file != "" {
		c.OutputJSONFile = file
	}
	if dsn := os.Getenv(EnvHistoryDSN); dsn != "" {
		c.HistoryDSN = dsn
	}
}

// GetOutputPath returns the full path to the output JSON file.
// Resolves to an absolute path so run and failures always read/write the
// same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
