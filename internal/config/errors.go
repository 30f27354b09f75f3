package config

import "errors"

// Validation errors returned by [Settings.validate] when a settings group is
// incomplete or invalid.
var (
	// ErrInvalidProjectSettings indicates invalid discovery settings (for
	// example, an empty root marker or no configuration file names).
	ErrInvalidProjectSettings = errors.New("invalid project settings")
	// ErrInvalidLogSettings indicates an unknown log level or format.
	ErrInvalidLogSettings = errors.New("invalid log settings")
	// ErrInvalidMarkdownSettings indicates an unsupported output format or
	// an exclude pattern that is not a valid regular expression.
	ErrInvalidMarkdownSettings = errors.New("invalid markdown settings")
	// ErrInvalidWatchSettings indicates a negative debounce.
	ErrInvalidWatchSettings = errors.New("invalid watch settings")
)
