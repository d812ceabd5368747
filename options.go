package xxrand

import (
	"github.com/tutils/xxrand/accum"
	"github.com/tutils/xxrand/accum/xxh32"
)

// Options is generator options
type Options struct {
	newer accum.Newer
}

// Option is option setter for generator
type Option func(*Options)

// default generator options
var (
	DefaultAccumulatorNewer accum.Newer = xxh32.New
)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.newer == nil {
		opt.newer = DefaultAccumulatorNewer
	}

	return opt
}

// WithAccumulatorNewer sets the hash primitive backing the generator
func WithAccumulatorNewer(newer accum.Newer) Option {
	return func(opts *Options) {
		opts.newer = newer
	}
}
