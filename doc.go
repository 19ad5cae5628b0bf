// Package bcryptkdf derives fixed-length cryptographic keys from passwords
// using the bcrypt_pbkdf construction, wrapped in a validated, configurable
// API suitable for storage-comparison secrets and key material.
//
// The package is a policy layer over the low-level bcryptpbkdf subpackage:
// it enforces a minimum salt length, applies configured defaults for round
// count and key length, optionally normalizes Unicode text input, and hands
// back the derived key as a scrubbed-on-demand buffer the library keeps no
// reference to.
//
// # Architecture
//
//  1. Configuration — a Deriver is built once from a Config via New (or
//     NewFromEnv, which parses KDF_* environment variables). All validation
//     happens at construction; a bad default salt fails startup rather than
//     silently disabling the default.
//  2. Derivation — Derive validates per-call options, converts text to raw
//     bytes (byte length, not rune count, feeds the algorithm) and invokes
//     bcryptpbkdf.Key. The call either returns exactly the requested number
//     of bytes or a typed error; there is no partial success.
//  3. Key handling — the returned Key is a fresh buffer owned by the caller.
//     Zero scrubs it, Equal compares in constant time, and DeriveScoped
//     guarantees scrubbing on every exit path.
//
// # Usage
//
//	d, err := bcryptkdf.New(bcryptkdf.Config{
//		DefaultSalt: "application-wide-salt",
//		Rounds:      16,
//	})
//	if err != nil {
//	    // handle error
//	}
//
//	key, err := d.Derive("user password")
//	if err != nil {
//	    // handle error
//	}
//	defer key.Zero()
//
// Per-call overrides:
//
//	key, err := d.Derive("user password",
//		bcryptkdf.WithSalt("per-user-salt"),
//		bcryptkdf.WithRounds(32),
//		bcryptkdf.WithKeyLength(64),
//	)
//
// # Error Handling
//
// All public functions return errors wrapping a package sentinel such as
// ErrInvalidSalt or ErrDerivationFailed. Use errors.Is to match against
// them. Validation errors are raised before any cryptographic work begins.
//
// # Concurrency
//
// A Deriver is immutable after construction and safe for concurrent use.
// Each call allocates its own buffers; no shared mutable state exists
// between calls.
package bcryptkdf
