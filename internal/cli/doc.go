// Package cli provides command-line argument parsing for email-hasher.
//
// This package converts os.Args into an Args value. Only two options
// are recognized:
//   - -h, --help: show usage
//   - --version: show the version
//
// Every other value is positional, including values that start with a
// dash, since "-user@example.com" is an acceptable email. Use "--" to
// pass "-h" or "--version" as the positional value.
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if errors.Is(err, cli.ErrMissingInput) {
//	    ui.Fail("No email entered.")
//	    os.Exit(1)
//	}
package cli
