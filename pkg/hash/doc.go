// Package hash provides the SHA-256 digest helpers behind email-hasher.
//
// Digests are always rendered as 64 lowercase hex characters, the same
// form that is printed to stdout and stored in hash.email.
//
// Example usage:
//
//	digest := hash.SHA256Sum("test@example.com")
//	// Returns: 64 lowercase hex characters
//
//	raw, err := hash.Decode(digest)
//	// raw holds the 32 digest bytes
//
// Validation:
//   - Valid reports whether a string is a well-formed digest
//   - Decode rejects wrong lengths, uppercase and non-hex characters
package hash
