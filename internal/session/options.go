package session

import "log/slog"

// Option configures a Session during creation.
type Option func(*Session)

// WithInitialValue sets the serialized document value the session
// opens with.
func WithInitialValue(value string) Option {
	return func(s *Session) {
		s.initialValue = value
	}
}

// WithOnChange sets the callback receiving every newly emitted
// serialized value. The callback runs outside the session lock.
func WithOnChange(fn func(value string)) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxPages sets the overflow safety bound on total pages.
func WithMaxPages(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxPages = n
		}
	}
}
