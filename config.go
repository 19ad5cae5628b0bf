package bcryptkdf

import (
	"errors"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds the process-wide derivation defaults. The zero value is usable
// as long as every Derive call supplies its own salt: Rounds and KeyLength
// fall back to 1 and 32 respectively.
type Config struct {
	// DefaultSalt is used when a call does not override the salt. When set, it
	// must be at least MinSaltLen bytes after text conversion.
	DefaultSalt string `env:"KDF_DEFAULT_SALT"`

	// Rounds is the default stretching round count. Higher values cost more
	// CPU per derivation and resist brute force better.
	Rounds int `env:"KDF_ROUNDS" envDefault:"1"`

	// KeyLength is the default derived key length in bytes.
	KeyLength int `env:"KDF_KEY_LENGTH" envDefault:"32"`

	// NormalizeUnicode applies NFC normalization to passwords and text salts
	// before byte conversion, so visually identical input derives identical
	// keys regardless of how the text was composed.
	NormalizeUnicode bool `env:"KDF_NORMALIZE_UNICODE" envDefault:"false"`
}

// NewFromEnv builds a Deriver from KDF_* environment variables. A .env file
// in the working directory is loaded automatically if present.
func NewFromEnv() (*Deriver, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}
	return New(cfg)
}
