package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/fuzumoe/gopaginate/internal/app"
)

// run is a variable so it can be overridden in tests.
var run = app.Run

// exitFunc is a variable wrapping os.Exit so it can be overridden in tests.
var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		exitFunc(1)
	}
}
