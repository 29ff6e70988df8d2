// Package cli handles command-line argument parsing.
package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when no positional value was given.
	ErrMissingInput = errors.New("no email entered")

	// ErrTooManyArgs is returned when more than one positional value was given.
	ErrTooManyArgs = errors.New("too many arguments")
)

// Args represents parsed command-line arguments.
type Args struct {
	ShowHelp    bool
	ShowVersion bool

	// Email is the single positional value, unvalidated.
	Email string
}

// Parse parses command-line arguments into an Args struct.
// Help and version requests return early without checking positionals.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{}
	var positional []string

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-h", "--help":
			args.ShowHelp = true
			return args, nil

		case "--version":
			args.ShowVersion = true
			return args, nil

		case "--":
			positional = append(positional, osArgs[i+1:]...)
			i = len(osArgs)

		default:
			positional = append(positional, arg)
			i++
		}
	}

	switch len(positional) {
	case 0:
		return nil, ErrMissingInput
	case 1:
		args.Email = positional[0]
		return args, nil
	default:
		return nil, fmt.Errorf("%w: expected 1 email, got %d", ErrTooManyArgs, len(positional))
	}
}
