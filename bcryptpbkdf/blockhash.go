package bcryptpbkdf

import (
	"errors"

	"golang.org/x/crypto/blowfish"
)

// magic is the bcrypt_pbkdf ciphertext seed, 4 Blowfish blocks long.
var magic = []byte("OxychromaticBlowfishSwatDynamite")

// blockHash is the pseudo-random function of the construction: it fills the
// BlockSize-byte out with a bcrypt-like hash of the pre-hashed password and
// the per-round salt digest.
//
// The cipher state is first keyed with the expensive salted schedule, then
// re-keyed 64 times from alternating salt and password material. The keyed
// cipher encrypts the magic block 64 times per 8-byte chunk, and each 32-bit
// word is byte-swapped at the end to match the reference's little-endian
// output.
func blockHash(out, passHash, saltHash []byte) error {
	c, err := blowfish.NewSaltedCipher(passHash, saltHash)
	if err != nil {
		return errors.Join(ErrKeyScheduleFailed, err)
	}
	for i := 0; i < 64; i++ {
		blowfish.ExpandKey(saltHash, c)
		blowfish.ExpandKey(passHash, c)
	}

	copy(out, magic)
	for i := 0; i < BlockSize; i += blowfish.BlockSize {
		for j := 0; j < 64; j++ {
			c.Encrypt(out[i:i+blowfish.BlockSize], out[i:i+blowfish.BlockSize])
		}
	}
	for i := 0; i < BlockSize; i += 4 {
		out[i], out[i+1], out[i+2], out[i+3] = out[i+3], out[i+2], out[i+1], out[i]
	}
	return nil
}
