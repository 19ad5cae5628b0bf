package bcryptkdf

import "errors"

var (
	// ErrInvalidPassword is returned when the password is empty.
	ErrInvalidPassword = errors.New("password must not be empty")

	// ErrInvalidRounds is returned when the configured or per-call round count is below 1.
	ErrInvalidRounds = errors.New("rounds must be a positive integer")

	// ErrInvalidKeyLength is returned when the requested key length is outside the supported range.
	ErrInvalidKeyLength = errors.New("key length must be between 1 and 1024 bytes")

	// ErrInvalidSalt is returned when no salt is available or the salt is shorter
	// than MinSaltLen bytes. The rule applies identically to the configured
	// default and to per-call overrides.
	ErrInvalidSalt = errors.New("salt must be at least 8 bytes")

	// ErrDerivationFailed wraps an internal fault in the derivation core. It is
	// never caused by caller input that passed validation.
	ErrDerivationFailed = errors.New("key derivation failed")

	// ErrFailedToParseConfig is returned by NewFromEnv when environment
	// variables cannot be parsed into the Config struct.
	ErrFailedToParseConfig = errors.New("failed to parse bcryptkdf environment config")
)
