package analytics

import "fmt"

// ValidationError marks malformed or out-of-range caller input, such as
// an unknown stat type. Handlers map it to a 400 response.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError marks a category/threshold/season key the engine
// has no configuration for. It is never transient; handlers map it to
// a 400 response.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func configurationErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}
