package bcryptkdf

import "crypto/subtle"

// Key is derived key material. Every Key is a fresh allocation owned
// exclusively by the caller; the library retains no reference to it, so
// zeroing it is deterministic.
type Key []byte

// Bytes exposes the underlying buffer without copying.
func (k Key) Bytes() []byte { return k }

// Zero overwrites the key material. The Key remains usable as a zero-filled
// buffer afterwards; call it once the key is no longer needed.
func (k Key) Zero() {
	for i := range k {
		k[i] = 0
	}
}

// Equal compares the key against other in constant time. Buffers of
// different lengths compare unequal without leaking where they differ.
func (k Key) Equal(other []byte) bool {
	return subtle.ConstantTimeCompare(k, other) == 1
}
