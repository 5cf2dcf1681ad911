package person

import "log"

// Option is a function that modifies a Factory.
type Option func(*Factory)

// WithValidationMode sets the validation mode for builders created by the
// factory.
func WithValidationMode(mode ValidationMode) Option {
	return func(f *Factory) {
		f.mode = mode
	}
}

// WithLogger sets the structured logger used by the factory and its
// builders. The default is [NopLogger].
func WithLogger(logger StructuredLogger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithStdLogger is a convenience option wrapping a standard library
// *log.Logger via [WrapStdLogger].
func WithStdLogger(logger *log.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = WrapStdLogger(logger)
		}
	}
}
