package override

import "errors"

var (
	// ErrInvalidRegistration wraps every rejected call to [Registry.Register].
	ErrInvalidRegistration = errors.New("invalid override registration")
	// ErrEmptyScope is returned when no scope is given.
	ErrEmptyScope = errors.New("scope is empty")
	// ErrEmptyContribution is returned when the contribution carries neither
	// a document nor a producer.
	ErrEmptyContribution = errors.New("contribution is empty")
	// ErrProducerFailed wraps errors returned by a lazy contribution.
	ErrProducerFailed = errors.New("override producer failed")
)
