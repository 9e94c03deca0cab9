// interceptd - keyboard/mouse interception daemon
//
// interceptd opens one Interception driver context, registers the filters
// named in its configuration, and loops: wait for device activity, receive
// the pending strokes, apply remap rules, journal if configured, and
// re-inject. The configuration file is reloaded live when it changes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"interceptd/internal/config"
	"interceptd/internal/logging"
)

func main() {
	configPath := flag.String("config", "interceptd.toml", "path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	default:
		fmt.Fprintf(os.Stderr, "interceptd: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "interceptd: %v\n", err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := run(*configPath, cfg, logger); err != nil {
		logger.Error("daemon failed", "error", err)
		os.Exit(1)
	}
}
