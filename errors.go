package combolock

import "errors"

var (
	// ErrUnknownValidator is returned when a validator name does not resolve.
	ErrUnknownValidator = errors.New("unknown validator")
	// ErrNilValidator is returned when a nil validator is supplied.
	ErrNilValidator = errors.New("nil validator")
	// ErrSealFailed wraps a validator error raised while sealing a credential.
	ErrSealFailed = errors.New("credential seal failed")
	// ErrInvalidConfig wraps config validation failures.
	ErrInvalidConfig = errors.New("invalid config")
)
