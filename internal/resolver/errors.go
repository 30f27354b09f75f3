package resolver

import "errors"

var (
	ErrLocateConfig = errors.New("cannot locate configuration file")
	ErrLoadConfig   = errors.New("cannot load configuration file")
	ErrMiddleware   = errors.New("cannot resolve middleware overrides")
)
