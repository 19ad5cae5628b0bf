package bcryptkdf

import (
	"errors"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/bcryptkdf/bcryptpbkdf"
)

const (
	// MinSaltLen is the minimum accepted salt length in bytes.
	MinSaltLen = 8

	// MaxKeyLen is the largest derivable key length in bytes.
	MaxKeyLen = bcryptpbkdf.MaxKeyLen

	defaultRounds    = 1
	defaultKeyLength = 32
)

// Deriver derives keys with a fixed set of validated defaults. It is
// immutable after construction and safe for concurrent use.
type Deriver struct {
	defaultSalt []byte // nil when no default is configured
	rounds      int
	keyLength   int
	normalize   bool
}

// New validates cfg once and returns a Deriver. Zero-value Rounds and
// KeyLength take the documented defaults; negative or otherwise out-of-range
// values are rejected. A configured DefaultSalt shorter than MinSaltLen fails
// construction so a misconfigured process stops at startup instead of
// deriving with a weak salt.
func New(cfg Config) (*Deriver, error) {
	if cfg.Rounds == 0 {
		cfg.Rounds = defaultRounds
	}
	if cfg.KeyLength == 0 {
		cfg.KeyLength = defaultKeyLength
	}
	if cfg.Rounds < 1 {
		return nil, ErrInvalidRounds
	}
	if cfg.KeyLength < 1 || cfg.KeyLength > MaxKeyLen {
		return nil, ErrInvalidKeyLength
	}

	d := &Deriver{
		rounds:    cfg.Rounds,
		keyLength: cfg.KeyLength,
		normalize: cfg.NormalizeUnicode,
	}
	if cfg.DefaultSalt != "" {
		salt := []byte(d.normalizeText(cfg.DefaultSalt))
		if err := validateSalt(salt); err != nil {
			return nil, err
		}
		d.defaultSalt = salt
	}
	return d, nil
}

// Derive produces a key of the configured (or overridden) length from
// password and the resolved salt. An explicit WithSalt/WithSaltBytes option
// takes precedence over the configured default; if neither is present the
// call fails with ErrInvalidSalt.
//
// All validation happens before any cryptographic work. The returned Key is
// a fresh buffer the Deriver keeps no reference to.
func (d *Deriver) Derive(password string, opts ...Option) (Key, error) {
	if password == "" {
		return nil, ErrInvalidPassword
	}

	o := deriveOptions{
		salt:      d.defaultSalt,
		rounds:    d.rounds,
		keyLength: d.keyLength,
		normalize: d.normalize,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if o.salt == nil {
		return nil, ErrInvalidSalt
	}

	raw, err := bcryptpbkdf.Key([]byte(d.normalizeText(password)), o.salt, o.rounds, o.keyLength)
	if err != nil {
		// Inputs were validated above, so any core error is an internal fault.
		return nil, errors.Join(ErrDerivationFailed, err)
	}
	return Key(raw), nil
}

// DeriveScoped derives a key, passes it to fn and scrubs it on every exit
// path, including a panic inside fn. Use it when the key must not outlive a
// well-defined scope.
func (d *Deriver) DeriveScoped(password string, fn func(Key) error, opts ...Option) error {
	key, err := d.Derive(password, opts...)
	if err != nil {
		return err
	}
	defer key.Zero()
	return fn(key)
}

func (d *Deriver) normalizeText(s string) string {
	if !d.normalize {
		return s
	}
	return norm.NFC.String(s)
}

func validateSalt(salt []byte) error {
	if len(salt) < MinSaltLen || len(salt) > bcryptpbkdf.MaxSaltLen {
		return ErrInvalidSalt
	}
	return nil
}
