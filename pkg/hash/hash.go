// Package hash provides hashing utilities for email identifiers.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// Size is the length of a raw digest in bytes.
const Size = sha256.Size

// HexLen is the length of a hex-encoded digest.
const HexLen = Size * 2

// ErrInvalidDigest is returned by Decode for strings that are not a
// lowercase hex SHA-256 digest.
var ErrInvalidDigest = errors.New("invalid digest")

// SHA256Sum returns the lowercase hex SHA-256 digest of the UTF-8 bytes of s.
func SHA256Sum(s string) string {
	hasher := sha256.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Decode converts a hex digest back into its raw bytes.
// Uppercase input is rejected so that re-encoding always reproduces digest.
func Decode(digest string) ([]byte, error) {
	if len(digest) != HexLen {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidDigest, len(digest), HexLen)
	}
	if !Valid(digest) {
		return nil, fmt.Errorf("%w: %q is not lowercase hex", ErrInvalidDigest, digest)
	}

	raw, err := hex.DecodeString(digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDigest, err)
	}
	return raw, nil
}

// Valid reports whether digest is exactly 64 lowercase hex characters.
func Valid(digest string) bool {
	if len(digest) != HexLen {
		return false
	}
	for i := 0; i < len(digest); i++ {
		c := digest[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
