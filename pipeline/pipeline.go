package pipeline

import (
	"strings"

	"github.com/nvr-ai/go-filters/filters"
	"github.com/nvr-ai/go-filters/images"
	"github.com/nvr-ai/go-filters/profiler"
	"github.com/pkg/errors"
)

// Pipeline applies filters to a buffer in order.
type Pipeline struct {
	name          string
	filters       []filters.Filter
	filterOptions []filters.Option
	tracker       *profiler.Tracker
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTracker records the duration of every step under the filter's name.
func WithTracker(t *profiler.Tracker) Option {
	return func(p *Pipeline) {
		p.tracker = t
	}
}

// WithFilterOptions passes parallelism options to every step.
func WithFilterOptions(opts ...filters.Option) Option {
	return func(p *Pipeline) {
		p.filterOptions = append(p.filterOptions, opts...)
	}
}

// New builds a pipeline from a configuration.
func New(cfg *Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{name: cfg.Name}
	for _, opt := range opts {
		opt(p)
	}

	for _, s := range cfg.Steps {
		switch strings.ToLower(s.Op) {
		case OpGrayscale:
			p.filters = append(p.filters, filters.Grayscale{Options: p.filterOptions})
		case OpBrightness:
			p.filters = append(p.filters, filters.Brightness{Factor: s.Factor, Options: p.filterOptions})
		}
	}
	return p, nil
}

// Name returns the configured pipeline name.
func (p *Pipeline) Name() string { return p.name }

// Run applies every step to pixels in place. The shape is checked once up
// front, so either every step runs or none does.
func (p *Pipeline) Run(pixels []byte, width, height int) error {
	if _, err := filters.Validate(pixels, width, height); err != nil {
		return err
	}

	log := Logger()
	for i, f := range p.filters {
		var done func()
		if p.tracker != nil {
			done = p.tracker.StartOperation(f.Name())
		}

		err := f.Apply(pixels, width, height)
		if done != nil {
			done()
		}
		if err != nil {
			return errors.Wrapf(err, "step %d (%s)", i, f.Name())
		}
		log.Debug("pipeline: applied step", "pipeline", p.name, "step", i, "filter", f.Name())
	}
	return nil
}

// RunFrame applies every step to the frame's buffer.
func (p *Pipeline) RunFrame(frame *images.Frame) error {
	return p.Run(frame.Pix, frame.Width, frame.Height)
}
