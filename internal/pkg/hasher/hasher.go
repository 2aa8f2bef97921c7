package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

const (
	SHA256     = "sha256"
	SHA3256    = "sha3-256"
	Blake2b256 = "blake2b-256"
)

var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// Hasher turns a plaintext credential into a fixed-length lowercase hex digest.
type Hasher struct {
	algorithm string
	newHash   func() hash.Hash
}

func New(algorithm string) (Hasher, error) {
	var newHash func() hash.Hash

	switch algorithm {
	case SHA256, "":
		algorithm = SHA256
		newHash = sha256.New
	case SHA3256:
		newHash = sha3.New256
	case Blake2b256:
		// blake2b.New256 only fails for keys longer than 64 bytes.
		if _, err := blake2b.New256(nil); err != nil {
			return Hasher{}, fmt.Errorf("blake2b init error: %w", err)
		}

		newHash = func() hash.Hash {
			h, _ := blake2b.New256(nil)

			return h
		}
	default:
		return Hasher{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	return Hasher{
		algorithm: algorithm,
		newHash:   newHash,
	}, nil
}

func (h Hasher) Hash(plaintext string) string {
	d := h.newHash()
	d.Write([]byte(plaintext)) //nolint:errcheck

	return hex.EncodeToString(d.Sum(nil))
}

func (h Hasher) Algorithm() string {
	return h.algorithm
}
