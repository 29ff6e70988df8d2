package email

import (
	"errors"
	"fmt"
	"regexp"
)

// Pattern is the email-shape expression an argument must match.
// A single trailing newline is tolerated and stays part of the hashed value.
const Pattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\n?\z`

var emailRe = regexp.MustCompile(Pattern)

// ErrInvalidFormat is returned when a value does not look like an email.
var ErrInvalidFormat = errors.New("not detected as an email")

// Match reports whether value has the shape local@domain.tld.
func Match(value string) bool {
	return emailRe.MatchString(value)
}

// Validate returns ErrInvalidFormat, wrapped with the offending value,
// when value does not match Pattern.
func Validate(value string) error {
	if !Match(value) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	return nil
}
