package tripleidx

type options struct {
	initialCapacity int
	logger          *Logger
}

// Option configures Graph construction.
type Option func(*options)

// WithInitialCapacity sizes the primary probe table for an expected triple
// count. The hint is rounded up to a power of two; the secondaries start
// small and grow on their own.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithLogger configures structured logging. The default logger discards
// everything; the graph logs at debug level only, never per operation.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
