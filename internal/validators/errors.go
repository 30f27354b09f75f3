package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidScope     = errors.New("invalid scope")
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidDirectory = errors.New("invalid directory")
	ErrInvalidFormat    = errors.New("invalid markdown format")
	ErrInvalidExclude   = errors.New("invalid exclude pattern")
	ErrOutIsSource      = errors.New("output directory is the scanned directory")
)
