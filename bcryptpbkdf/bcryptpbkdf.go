package bcryptpbkdf

import (
	"crypto/sha512"
	"encoding/binary"
)

const (
	// BlockSize is the number of bytes the block hash produces per invocation.
	BlockSize = 32

	// MaxKeyLen is the largest derivable key length in bytes.
	MaxKeyLen = 1024

	// MaxSaltLen is the largest accepted salt length in bytes.
	MaxSaltLen = 1 << 20
)

// Key derives keyLen bytes of key material from password and salt, performing
// rounds stretching passes per output block. Same inputs always yield the same
// output; there is no internal randomness.
//
// Output bytes for lengths that are not a multiple of BlockSize come from
// truncating the final interleaved block sequence, never from padding.
func Key(password, salt []byte, rounds, keyLen int) ([]byte, error) {
	if rounds < 1 {
		return nil, ErrTooFewRounds
	}
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}
	if len(salt) == 0 || len(salt) > MaxSaltLen {
		return nil, ErrBadSaltLength
	}
	if keyLen < 1 || keyLen > MaxKeyLen {
		return nil, ErrBadKeyLength
	}

	numBlocks := (keyLen + BlockSize - 1) / BlockSize
	key := make([]byte, numBlocks*BlockSize)

	h := sha512.New()
	h.Write(password)
	passHash := h.Sum(nil)

	// Scratch reused across blocks; h.Sum appends into saltHash's backing array.
	saltHash := make([]byte, 0, sha512.Size)
	counter := make([]byte, 4)
	block := make([]byte, BlockSize)
	accum := make([]byte, BlockSize)

	for n := 1; n <= numBlocks; n++ {
		h.Reset()
		h.Write(salt)
		binary.BigEndian.PutUint32(counter, uint32(n))
		h.Write(counter)
		if err := blockHash(block, passHash, h.Sum(saltHash)); err != nil {
			return nil, err
		}

		copy(accum, block)
		for i := 2; i <= rounds; i++ {
			h.Reset()
			h.Write(block)
			if err := blockHash(block, passHash, h.Sum(saltHash)); err != nil {
				return nil, err
			}
			for j := range accum {
				accum[j] ^= block[j]
			}
		}

		// The reference implementation stripes each block's bytes across the
		// whole output rather than concatenating blocks.
		for i, v := range accum {
			key[i*numBlocks+(n-1)] = v
		}
	}

	return key[:keyLen], nil
}
