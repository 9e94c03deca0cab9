//go:build !windows

package main

import (
	"errors"
	"log/slog"

	"interceptd/internal/config"
)

func run(_ string, _ *config.Config, _ *slog.Logger) error {
	return errors.New("interceptd requires Windows and the Interception driver")
}
