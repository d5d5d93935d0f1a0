// SPDX-License-Identifier: MIT

// Package typesys: functional configuration for System.
//
// Design goals:
//   - No dead switches: every option changes observable behaviour.
//   - Safe by construction: options never fail; nil arguments restore defaults.

package typesys

import "log/slog"

// Option configures a System.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.New(slog.DiscardHandler)}
}

// WithLogger routes canonicalization diagnostics (collapsed arities, absorbed
// components) to l at Debug level. A nil logger discards them, which is the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
