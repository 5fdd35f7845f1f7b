// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bench houses the benchmark registry and the individual
// benchmark workloads.
//
// Each workload measures a primitive operation with the process-local
// stopwatch provided by the perftime package and writes normalized
// throughput figures directly to the provided writer.  The workloads
// run strictly sequentially on the calling goroutine and own all of
// their buffers, cipher contexts, and containers for the duration of
// a single invocation.
package bench

import (
	"fmt"
	"io"

	"github.com/cellbench/cellbench/internal/perftime"
)

// Benchmark associates a registered benchmark name with the workload
// it runs.  The name doubles as the command line selector and the
// banner label.
type Benchmark struct {
	// Name uniquely identifies the benchmark across the registry.
	Name string

	// run executes the workload, writing its results to w.
	run func(w io.Writer)
}

// benchmarks is the process-wide benchmark registry.  Benchmarks are
// dispatched in table order.  The table is fixed after initialization
// and selection state is tracked separately by Run, so the registry
// itself is never mutated.
var benchmarks = []Benchmark{
	{Name: "dmap", run: benchDMap},
	{Name: "aes", run: benchAES},
	{Name: "cell_aes", run: benchCellAES},
}

// Find returns the registered benchmark with the provided name or nil
// when there is none.  Matching is exact and case sensitive.
func Find(name string) *Benchmark {
	for i := range benchmarks {
		if benchmarks[i].Name == name {
			return &benchmarks[i]
		}
	}
	return nil
}

// Names returns the names of all registered benchmarks in dispatch
// order.
func Names() []string {
	names := make([]string, 0, len(benchmarks))
	for i := range benchmarks {
		names = append(names, benchmarks[i].Name)
	}
	return names
}

// Run resolves the provided benchmark names against the registry and
// dispatches the selected benchmarks in table order, writing all
// output to w.
//
// Names that do not match any registered benchmark produce a
// diagnostic line and are otherwise ignored, though they still count
// as an explicit selection.  When no names are provided at all, every
// registered benchmark is selected.  When listOnly is set, the banner
// for each selected benchmark is written without invoking its
// workload.
func Run(w io.Writer, names []string, listOnly bool) {
	run(w, benchmarks, names, listOnly)
}

// run implements Run against an arbitrary registry table.
func run(w io.Writer, table []Benchmark, names []string, listOnly bool) {
	selected := make(map[string]struct{}, len(names))
	for _, name := range names {
		found := false
		for i := range table {
			if table[i].Name == name {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(w, "No such benchmark as %s\n", name)
			continue
		}
		selected[name] = struct{}{}
	}

	runAll := len(names) == 0
	for i := range table {
		b := &table[i]
		if _, ok := selected[b.Name]; !ok && !runAll {
			continue
		}
		fmt.Fprintf(w, "===== %s =====\n", b.Name)
		if listOnly {
			continue
		}
		sw := perftime.Start()
		b.run(w)
		log.Debugf("Benchmark %s completed in %d us", b.Name,
			sw.ElapsedMicros())
	}
}
