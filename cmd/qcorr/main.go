package main

import (
	"os"

	"qcorr/internal/logging"
)

func main() {
	logger := logging.NewLogger(logging.Config{
		Format: logging.FormatHuman,
		Level:  logging.LevelInfo,
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
