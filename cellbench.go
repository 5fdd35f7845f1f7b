// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cellbench/cellbench/internal/bench"
	"github.com/cellbench/cellbench/internal/perftime"
	"github.com/cellbench/cellbench/internal/version"
)

// benchMain is the real main function for cellbench.  It is necessary
// to work around the fact that deferred functions do not run when
// os.Exit() is called.
func benchMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.  Any
	// remaining arguments name the benchmarks to run.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, benchNames, err := loadConfig(appName)
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Show version and timing source at startup.  The timing source
	// is fixed at build time, so logging it once up front is enough
	// for every measurement that follows.
	cbLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
	cbLog.Debugf("Timing source: %s", perftime.Source())

	// Dispatch the selected benchmarks in registry order.  Unknown
	// names are diagnosed inside the dispatcher and do not constitute
	// a failure.
	bench.Run(os.Stdout, benchNames, cfg.List)
	return nil
}

func main() {
	if err := benchMain(); err != nil {
		os.Exit(1)
	}
}
