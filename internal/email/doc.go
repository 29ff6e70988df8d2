// Package email provides the email-shape check used before hashing.
//
// The check is syntactic only: a local part, an "@", a domain with at
// least one dot and a top-level label of two or more letters. It does
// not enforce length limits, RFC 5322 grammar or DNS lookups, and the
// accepted set must stay exactly as Pattern describes.
//
// Example usage:
//
//	if err := email.Validate(os.Args[1]); err != nil {
//	    // errors.Is(err, email.ErrInvalidFormat)
//	}
package email
