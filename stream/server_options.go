package stream

import "time"

// ServerOptions is server options
type ServerOptions struct {
	addr           string
	maxBatch       int
	reportInterval time.Duration
}

// ServerOption is option setter for server
type ServerOption func(*ServerOptions)

// default server options
var (
	DefaultListenAddress  = "ws://0.0.0.0:8080/stream"
	DefaultReportInterval = time.Second * 10
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.maxBatch <= 0 {
		opt.maxBatch = DefaultMaxBatch
	}
	if opt.reportInterval <= 0 {
		opt.reportInterval = DefaultReportInterval
	}

	return opt
}

// WithListenAddress sets server listen address, e.g. ws://0.0.0.0:8080/stream
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithMaxBatch sets the largest n a request may ask for
func WithMaxBatch(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.maxBatch = n
	}
}

// WithReportInterval sets how often the served-value rate is refreshed
func WithReportInterval(d time.Duration) ServerOption {
	return func(opts *ServerOptions) {
		opts.reportInterval = d
	}
}
