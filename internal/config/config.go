package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete qcorr configuration (v1 schema)
type Config struct {
	Version    int    `json:"version" mapstructure:"version"`
	ModuleRoot string `json:"moduleRoot" mapstructure:"moduleRoot"`

	Correlation CorrelationConfig `json:"correlation" mapstructure:"correlation"`
	Resolution  ResolutionConfig  `json:"resolution" mapstructure:"resolution"`
	Trend       TrendConfig       `json:"trend" mapstructure:"trend"`
	Logging     LoggingConfig     `json:"logging" mapstructure:"logging"`
}

// CorrelationConfig tunes pattern detection
type CorrelationConfig struct {
	ConfidenceThreshold float64            `json:"confidenceThreshold" mapstructure:"confidenceThreshold"`
	CallerImpact        map[string]float64 `json:"callerImpact" mapstructure:"callerImpact"`
}

// ResolutionConfig tunes the resolver set
type ResolutionConfig struct {
	DocsDir        string   `json:"docsDir" mapstructure:"docsDir"`
	ArchiveDir     string   `json:"archiveDir" mapstructure:"archiveDir"`
	ProtectedPaths []string `json:"protectedPaths" mapstructure:"protectedPaths"`
}

// TrendConfig locates the analyzers' snapshot database
type TrendConfig struct {
	DatabasePath string `json:"databasePath" mapstructure:"databasePath"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		ModuleRoot: ".",
		Correlation: CorrelationConfig{
			ConfidenceThreshold: 0.5,
			CallerImpact:        map[string]float64{},
		},
		Resolution: ResolutionConfig{
			DocsDir:        "docs",
			ArchiveDir:     ".archive",
			ProtectedPaths: []string{},
		},
		Trend: TrendConfig{
			DatabasePath: ".qcorr/trend.db",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .qcorr/config.json
func LoadConfig(moduleRoot string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("moduleRoot", ".")
	v.SetDefault("correlation.confidenceThreshold", 0.5)
	v.SetDefault("resolution.docsDir", "docs")
	v.SetDefault("resolution.archiveDir", ".archive")
	v.SetDefault("trend.databasePath", ".qcorr/trend.db")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(moduleRoot, ".qcorr"))

	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .qcorr/config.json
func (c *Config) Save(moduleRoot string) error {
	configDir := filepath.Join(moduleRoot, ".qcorr")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Correlation.ConfidenceThreshold < 0 || c.Correlation.ConfidenceThreshold > 1 {
		return &ConfigError{Field: "correlation.confidenceThreshold", Message: "must be between 0 and 1"}
	}
	if c.Resolution.DocsDir == "" {
		return &ConfigError{Field: "resolution.docsDir", Message: "must not be empty"}
	}
	if c.Resolution.ArchiveDir == "" {
		return &ConfigError{Field: "resolution.archiveDir", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
