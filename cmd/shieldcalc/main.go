// Command shieldcalc computes gamma-ray shielding from the command line.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

const version = "0.1.0-dev"

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
