package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/picoedit/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := logging.Console(os.Stderr, zerolog.InfoLevel)
		log.Error().Err(err).Msg("picoedit failed")
		os.Exit(1)
	}
}
