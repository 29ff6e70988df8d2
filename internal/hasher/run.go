package hasher

import (
	"errors"
	"fmt"
	"io"

	"github.com/rickgorman/email-hasher/internal/cli"
	"github.com/rickgorman/email-hasher/internal/email"
	"github.com/rickgorman/email-hasher/internal/hashfile"
	"github.com/rickgorman/email-hasher/internal/ui"
	"github.com/rickgorman/email-hasher/pkg/hash"
)

// Exit statuses returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Hasher holds the destinations for one invocation.
type Hasher struct {
	// Stdout receives the digest line, the usage text and the version.
	Stdout io.Writer

	// Dir is where hash.email is written.
	Dir string

	Version string
}

// Run parses osArgs, hashes the email and writes the artifact.
// Diagnostics are printed through ui.
func (h *Hasher) Run(osArgs []string) int {
	args, err := cli.Parse(osArgs)
	if err != nil {
		reportError(err)
		return ExitFailure
	}

	if args.ShowHelp {
		h.showHelp()
		return ExitSuccess
	}
	if args.ShowVersion {
		fmt.Fprintf(h.Stdout, "email-hasher %s\n", h.Version)
		return ExitSuccess
	}

	if _, err := h.Hash(args.Email); err != nil {
		reportError(err)
		return ExitFailure
	}
	return ExitSuccess
}

// Hash validates value, writes its digest to hash.email and prints it to Stdout.
func (h *Hasher) Hash(value string) (string, error) {
	if err := email.Validate(value); err != nil {
		return "", err
	}

	digest := hash.SHA256Sum(value)

	// Persist first so a failed write never leaves a digest on stdout.
	if err := hashfile.Write(h.Dir, digest); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintln(h.Stdout, digest); err != nil {
		return "", fmt.Errorf("failed to print digest: %w", err)
	}
	return digest, nil
}

func reportError(err error) {
	switch {
	case errors.Is(err, cli.ErrMissingInput):
		ui.Fail("Error: No email entered.")
		ui.Info("Usage: %s", ui.Bold("email-hasher <email_address>"))
	case errors.Is(err, cli.ErrTooManyArgs):
		ui.Fail("Error: %v", err)
		ui.Info("Usage: %s", ui.Bold("email-hasher <email_address>"))
	case errors.Is(err, email.ErrInvalidFormat):
		ui.Fail("Error: What was entered wasn't detected as an email.")
	default:
		ui.Fail("Error: %v", err)
	}
}

func (h *Hasher) showHelp() {
	fmt.Fprintf(h.Stdout, `email-hasher - hash an email address with SHA-256

Usage:
  email-hasher <email_address>
  email-hasher --help | --version

The lowercase hex digest is printed to stdout and written to
%s in the current directory, replacing any previous content.

Example:
  email-hasher example@email.com
`, hashfile.FileName)
	ui.DimMsg("Exit status is 0 on success and 1 on any error.")
}
