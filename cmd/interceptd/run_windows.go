//go:build windows

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interceptd/internal/config"
	"interceptd/internal/journal"
	"interceptd/internal/remap"
	"interceptd/internal/watcher"
	"interceptd/pkg/bounded"
	"interceptd/pkg/interception"
)

// waitSlice bounds each blocking wait so shutdown and reload signals are
// observed between driver events.
const waitSlice = 500 * time.Millisecond

func run(configPath string, cfg *config.Config, logger *slog.Logger) error {
	ctx, err := interception.New()
	if err != nil {
		return fmt.Errorf("open driver context: %w", err)
	}
	defer ctx.Close()

	table, err := remap.Compile(cfg.Remap)
	if err != nil {
		return err
	}

	var jnl *journal.Journal
	if cfg.Journal.Enabled {
		jnl, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer jnl.Close()
	}

	applyFilters(ctx, cfg)
	logger.Info("interception active",
		"key_filter", cfg.KeyFilter().String(),
		"mouse_filter", cfg.MouseFilter().String(),
		"remap_rules", table.Len(),
		"journal", cfg.Journal.Enabled)

	// Live reload is best-effort: a missing config file just disables it.
	var reload <-chan struct{}
	if w, err := watcher.New(configPath, time.Second); err == nil {
		defer w.Close()
		reload = w.Events()
	} else {
		logger.Warn("config reload disabled", "error", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	buf := bounded.New[interception.Stroke](32)
	for {
		select {
		case sig := <-sigCh:
			logger.Info("shutting down", "signal", sig.String())
			return nil
		case <-reload:
			next, err := config.Load(configPath)
			if err != nil {
				logger.Warn("config reload rejected", "error", err)
				break
			}
			nextTable, err := remap.Compile(next.Remap)
			if err != nil {
				logger.Warn("config reload rejected", "error", err)
				break
			}
			cfg, table = next, nextTable
			applyFilters(ctx, cfg)
			logger.Info("config reloaded",
				"key_filter", cfg.KeyFilter().String(),
				"mouse_filter", cfg.MouseFilter().String(),
				"remap_rules", table.Len())
		default:
		}

		device := ctx.WaitTimeout(waitSlice)
		if interception.IsInvalid(device) {
			continue // timeout
		}

		strokes := ctx.Receive(device, buf)
		if len(strokes) == 0 {
			continue
		}

		if jnl != nil {
			for _, s := range strokes {
				if err := jnl.Record(device, s); err != nil {
					logger.Warn("journal write failed", "error", err)
				}
			}
		}

		if interception.IsKeyboard(device) {
			table.ApplyAll(strokes)
		}

		sent := ctx.Send(device, strokes)
		logger.Debug("forwarded strokes",
			"device", device, "received", len(strokes), "sent", sent)
	}
}

func applyFilters(ctx *interception.Context, cfg *config.Config) {
	if cfg.Capture.Keyboard {
		ctx.SetFilter(cfg.KeyFilter())
	}
	if cfg.Capture.Mouse {
		ctx.SetFilter(cfg.MouseFilter())
	}
}
