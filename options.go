package bcryptkdf

import "golang.org/x/text/unicode/norm"

// Option overrides one derivation parameter for a single Derive call.
// Options validate eagerly: an invalid override fails the call with the
// matching sentinel error before any derivation work starts.
type Option func(*deriveOptions) error

type deriveOptions struct {
	salt      []byte
	rounds    int
	keyLength int
	normalize bool
}

// WithSalt overrides the salt with a text value. The same NFC normalization
// rule as for passwords applies when the Deriver was configured with
// NormalizeUnicode. The salt must be at least MinSaltLen bytes after
// conversion.
func WithSalt(salt string) Option {
	return func(o *deriveOptions) error {
		if o.normalize {
			salt = norm.NFC.String(salt)
		}
		return o.setSalt([]byte(salt))
	}
}

// WithSaltBytes overrides the salt with raw bytes, bypassing text handling.
func WithSaltBytes(salt []byte) Option {
	return func(o *deriveOptions) error {
		return o.setSalt(salt)
	}
}

// WithRounds overrides the stretching round count for this call.
func WithRounds(rounds int) Option {
	return func(o *deriveOptions) error {
		if rounds < 1 {
			return ErrInvalidRounds
		}
		o.rounds = rounds
		return nil
	}
}

// WithKeyLength overrides the derived key length in bytes for this call.
func WithKeyLength(length int) Option {
	return func(o *deriveOptions) error {
		if length < 1 || length > MaxKeyLen {
			return ErrInvalidKeyLength
		}
		o.keyLength = length
		return nil
	}
}

func (o *deriveOptions) setSalt(salt []byte) error {
	if err := validateSalt(salt); err != nil {
		return err
	}
	o.salt = salt
	return nil
}
