// Package main implements the entry point for the FitFoodie API server,
// a social platform where fitness influencers publish meals and users
// follow influencers and favorite meals.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fitfoodie-api: %v\n", err)
		os.Exit(1)
	}
}

// run initializes the application and serves HTTP until a shutdown
// signal arrives. It exists so main has a single error exit path.
func run() error {
	app, err := newApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	slog.Info("starting fitfoodie-api",
		"port", app.config.Server.Port,
		"log_level", app.config.Server.LogLevel)

	return app.serve()
}
