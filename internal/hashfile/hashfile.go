// Package hashfile persists a digest to the hash.email artifact.
package hashfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rickgorman/email-hasher/pkg/hash"
)

// FileName is the artifact written relative to the working directory.
const FileName = "hash.email"

// Path returns the artifact path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Write replaces the artifact in dir with digest. No newline is appended.
func Write(dir, digest string) error {
	if err := os.WriteFile(Path(dir), []byte(digest), 0644); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	return nil
}

// Read returns the digest stored in dir, ignoring surrounding whitespace.
func Read(dir string) (string, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	digest := strings.TrimSpace(string(data))
	if !hash.Valid(digest) {
		return "", fmt.Errorf("%s: %w", path, hash.ErrInvalidDigest)
	}
	return digest, nil
}
