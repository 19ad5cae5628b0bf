// Package bcryptpbkdf implements the bcrypt_pbkdf(3) key derivation function
// from OpenBSD.
//
// The construction is a PBKDF2-style driver whose pseudo-random function is a
// bcrypt-like block hash: a Blowfish cipher keyed through an expensive salted
// key schedule, re-keyed 64 times from alternating salt and password material,
// then used to repeatedly encrypt a fixed 32-byte magic block. Password and
// salt are pre-hashed with SHA-512 before they reach the cipher, so inputs of
// any byte length are supported.
//
// The output is a deterministic function of (password, salt, rounds, keyLen).
// Increasing rounds raises the cost of each derived block linearly and is the
// primary brute-force resistance knob. Output bytes are interleaved across
// blocks, matching the reference implementation bit for bit; the published
// OpenBSD test vectors are pinned in the test suite.
//
// # Usage
//
//	key, err := bcryptpbkdf.Key([]byte("password"), salt, 16, 32)
//	if err != nil {
//	    // handle error
//	}
//
// This is a low-level package: it performs only the validation the algorithm
// itself requires. Most callers should use the parent bcryptkdf package,
// which adds salt policy, defaults and a scrubbed key buffer on top.
package bcryptpbkdf
