package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"qcorr/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .qcorr/config.json",
	Long: `Create the .qcorr directory with a default configuration file.

Examples:
  qcorr init
  qcorr init --module path/to/repo
  qcorr init --force`,
	Run: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	configPath := filepath.Join(moduleFlag, ".qcorr", "config.json")
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", configPath)
		os.Exit(1)
	}

	if err := config.DefaultConfig().Save(moduleFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", configPath)
}
