package sorted

import "log/slog"

type options struct {
	capacity int
	logger   *slog.Logger
}

// Option configures a Sequence at construction time.
type Option func(*options)

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithLogger sets the logger bulk operations report to, at debug level.
// A nil logger restores the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{}

	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
