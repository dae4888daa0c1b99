package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qcorr/internal/config"
	"qcorr/internal/logging"
	"qcorr/internal/version"
)

var (
	// moduleFlag is the CLI --module flag value
	moduleFlag string
)

var rootCmd = &cobra.Command{
	Use:   "qcorr",
	Short: "qcorr - cross-signal quality correlation",
	Long: `qcorr correlates the reports of independent code-quality analyzers,
detects systemic patterns that no single analyzer can see on its own, and
resolves the mechanical findings automatically.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("qcorr version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&moduleFlag, "module", ".",
		"Module root the reports and findings are relative to")
}

// mustLoadConfig loads and validates the configuration, exiting on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig(moduleFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the logger from config, honoring QCORR_LOG_LEVEL.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if env := os.Getenv("QCORR_LOG_LEVEL"); env != "" {
		level = env
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.ParseLevel(level),
	})
}
