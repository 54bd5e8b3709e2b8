package filters

import "runtime"

// DefaultMinParallelPixels is the pixel count under which transforms run on
// the calling goroutine. Below roughly a 256x256 image the goroutine fan-out
// costs more than it saves.
const DefaultMinParallelPixels = 1 << 16

// Options controls how a transform spreads its work.
type Options struct {
	// Workers is the maximum number of goroutines. Values <= 1 run sequentially.
	Workers int
	// MinParallelPixels is the smallest image, in pixels, that is split across workers.
	MinParallelPixels int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the maximum number of goroutines used by a transform.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithMinParallelPixels sets the pixel count under which work stays serial.
func WithMinParallelPixels(n int) Option {
	return func(o *Options) {
		o.MinParallelPixels = n
	}
}

func newOptions(opts []Option) Options {
	o := Options{
		Workers:           runtime.NumCPU(),
		MinParallelPixels: DefaultMinParallelPixels,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
