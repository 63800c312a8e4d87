package kafka

import "errors"

// PermanentError marks a handler failure that redelivery cannot fix.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent kafka handler error"
	}
	return "permanent: " + e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err so the consumer commits the message instead of retrying it.
func Permanent(err error) error {
	return PermanentError{Err: err}
}

// IsPermanent reports whether err carries a PermanentError.
func IsPermanent(err error) bool {
	var perm PermanentError
	return errors.As(err, &perm)
}
