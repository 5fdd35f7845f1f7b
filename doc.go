// Copyright (c) 2026 The cellbench developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
cellbench measures the per-operation cost of a small set of primitive
operations: symmetric-cipher encryption across block sizes, in-place
cell encryption across buffer misalignments, and digest-container
insertion and lookup throughput together with an empirical
false-positive estimate for the probabilistic set.

Measurements are based on process CPU time where the platform provides
a per-process CPU clock and fall back to wall-clock time elsewhere.
All benchmarks run sequentially on one goroutine and print normalized
nanoseconds-per-byte (or per-phase microsecond) figures to standard
output.

Usage:

	cellbench [OPTIONS] [benchmark ...]

Application Options:

	-d, --debuglevel=   Logging level {trace, debug, info, warn, error,
	                    critical} (default: info)
	    --list          List the selected benchmarks without running them
	    --logdir=       Directory to additionally write log output to as a
	                    rotating file
	-V, --version       Display version information and exit

Help Options:

	-h, --help          Show this help message

Any remaining arguments name the benchmarks to run (one of dmap, aes,
cell_aes).  Names that do not match a registered benchmark produce a
diagnostic and are skipped.  When no names are given, every registered
benchmark runs.
*/
package main
