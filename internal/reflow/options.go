package reflow

import "log/slog"

// DefaultMaxPages bounds the number of pages a document may grow to
// through overflow resolution. It guards against pathological content.
const DefaultMaxPages = 200

// Option configures a Reflower during creation.
type Option func(*Reflower)

// WithMaxPages sets the page-count safety bound.
func WithMaxPages(n int) Option {
	return func(r *Reflower) {
		if n > 0 {
			r.maxPages = n
		}
	}
}

// WithLogger sets the logger used for pass diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reflower) {
		if logger != nil {
			r.logger = logger
		}
	}
}
