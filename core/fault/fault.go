package fault

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("object not found")
	ErrAccessDenied  = errors.New("access denied")
	ErrTransport     = errors.New("transport error")
	ErrCancelled     = errors.New("cancelled")
	ErrInvalidData   = errors.New("invalid data")
)

// Kind returns the display name of the error class err belongs to.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return "ConfigurationError"
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	case errors.Is(err, ErrAccessDenied):
		return "AccessDeniedError"
	case errors.Is(err, ErrCancelled):
		return "CancelledError"
	case errors.Is(err, ErrTransport):
		return "TransportError"
	case errors.Is(err, ErrInvalidData):
		return "DataError"
	default:
		return "UnknownError"
	}
}

// Classified reports whether err already carries one of the package sentinels.
func Classified(err error) bool {
	return Kind(err) != "UnknownError" && err != nil
}

// Retryable reports whether err is transient. Only transport errors are.
func Retryable(err error) bool {
	return errors.Is(err, ErrTransport) && !errors.Is(err, ErrCancelled)
}

// Configuration returns a configuration error naming the offending field.
func Configuration(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrConfiguration, field, reason)
}

// Wrap attaches kind to err unless err is already classified.
// Context errors always become ErrCancelled.
func Wrap(kind, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		if errors.Is(err, ErrCancelled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if Classified(err) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
