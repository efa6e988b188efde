package charart

import "fmt"

// ConfigError reports a configuration that can never produce output:
// a bad hex color, an empty charset, a non-positive character width,
// posterize bits outside [0,8], or non-positive cell dimensions.
// It is always detected before any rendering begins.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid config: " + e.Reason
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// ResourceError reports a failure to acquire an input the pipeline
// depends on, such as the source image or a usable font.
type ResourceError struct {
	Resource string // "image" or "font"
	Path     string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("failed to load %s %q: %v", e.Resource, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// IOError reports a failure to write the output raster. The pipeline
// is single-shot; writes are never retried.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
