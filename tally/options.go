// SPDX-License-Identifier: MIT

// Package tally: functional configuration.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper.
//
// Options never change results: logging is Debug-only and the parallel
// closure is proven equal to the sequential one.
package tally

import "go.uber.org/zap"

// DefaultWorkers runs the beat-path closure sequentially.
const DefaultWorkers = 1

const (
	panicNilLogger      = "tally: WithLogger: logger must be non-nil"
	panicWorkersInvalid = "tally: WithWorkers: n must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	logger  *zap.Logger // zap.NewNop() by default
	workers int         // DefaultWorkers
}

// WithLogger routes Debug diagnostics (sizes, passes, tier counts) to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWorkers lets BeatPaths relax the rows of each intermediate pass on up
// to n goroutines. Passes themselves stay sequential.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func defaultOptions() Options {
	return Options{
		logger:  zap.NewNop(),
		workers: DefaultWorkers,
	}
}

// gatherOptions applies opts over the defaults; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
