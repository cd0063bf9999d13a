package telegramauth

import "errors"

var (
	// ErrMissingSignature means the payload carried no hash field.
	ErrMissingSignature = errors.New("telegramauth: missing signature")
	// ErrInvalidSignature means the computed HMAC did not match the hash.
	ErrInvalidSignature = errors.New("telegramauth: invalid signature")
	// ErrStalePayload means auth_date is older than the accepted window.
	ErrStalePayload = errors.New("telegramauth: stale payload")
	// ErrMalformedUserField means the user field is absent, not valid JSON,
	// or lacks a numeric id.
	ErrMalformedUserField = errors.New("telegramauth: malformed user field")
)
