package ats

import "go.uber.org/zap"

// Option customizes an analysis call
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger for the call. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
