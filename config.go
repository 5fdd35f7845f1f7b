// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/cellbench/cellbench/internal/version"
)

const (
	defaultDebugLevel  = "info"
	defaultLogFilename = "cellbench.log"
)

// config defines the configuration options for cellbench.
//
// See loadConfig for details on the configuration load process.
type config struct {
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	List        bool   `long:"list" description:"List the selected benchmarks without running them"`
	LogDir      string `long:"logdir" description:"Directory to additionally write log output to as a rotating file"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

// loadConfig initializes and parses the config using command line
// options and returns the parsed config along with the remaining
// positional arguments, which name the benchmarks to run.
//
// The --version and --help options are handled here and terminate the
// process directly since no benchmark should run in either case.
// This function also initializes logging and configures it
// accordingly.
func loadConfig(appName string) (*config, []string, error) {
	cfg := config{
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [benchmark ...]"
	remainingArgs, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		fmt.Printf("%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS,
			runtime.GOARCH)
		os.Exit(0)
	}

	// Initialize log rotation when a log directory is requested.
	// After the log rotation has been initialized, the logger
	// variables may be used.
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	// Parse, validate, and set debug log level.
	if _, ok := slog.LevelFromString(cfg.DebugLevel); !ok {
		err := fmt.Errorf("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}
	setLogLevels(cfg.DebugLevel)

	return &cfg, remainingArgs, nil
}
