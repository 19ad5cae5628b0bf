package bcryptpbkdf

import "errors"

var (
	// ErrTooFewRounds is returned when the round count is below 1.
	ErrTooFewRounds = errors.New("round count must be at least 1")

	// ErrEmptyPassword is returned for a zero-length password.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrBadSaltLength is returned when the salt is empty or exceeds MaxSaltLen.
	ErrBadSaltLength = errors.New("salt length must be between 1 byte and 1 MiB")

	// ErrBadKeyLength is returned when the requested key length is outside [1, MaxKeyLen].
	ErrBadKeyLength = errors.New("key length must be between 1 and 1024 bytes")

	// ErrKeyScheduleFailed is returned when the cipher rejects the computed
	// intermediate state. It indicates an internal fault, not bad caller input.
	ErrKeyScheduleFailed = errors.New("blowfish key schedule rejected intermediate state")
)
