package source

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
	ErrDecode            = errors.New("cannot decode configuration file")
	ErrRead              = errors.New("cannot read configuration file")
	ErrWatch             = errors.New("cannot watch files")
)
