package mdparser

import "errors"

var (
	ErrImportCycle = errors.New("import cycle")
	ErrRead        = errors.New("cannot read markdown source")
	ErrWrite       = errors.New("cannot write markdown output")
	ErrPlugin      = errors.New("markdown plugin failed")
	ErrOptions     = errors.New("invalid directive options")
)
