// Package fault defines the error taxonomy shared by every layer of the line counter.
//
// Components never invent their own error types for failure classes. They wrap one of
// the sentinels below with %w so callers can branch with errors.Is:
//
//   - ErrConfiguration: missing or invalid input. Fatal.
//   - ErrNotFound: bucket or object absent. Fatal.
//   - ErrAccessDenied: credentials rejected or insufficient. Fatal.
//   - ErrTransport: network or connection failure. May be retried by the transport layer.
//   - ErrCancelled: the caller cancelled the run or its deadline passed.
//   - ErrInvalidData: a compressed object could not be decoded. Fatal.
//
// # Usage
//
//	if errors.Is(err, fault.ErrNotFound) {
//	    // abort
//	}
//	log.Error("count failed", zap.String("kind", fault.Kind(err)))
package fault
