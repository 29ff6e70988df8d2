// Package ui provides terminal diagnostics for email-hasher.
//
// All messages go to ui.Out (defaults to os.Stdout) so that tests can
// capture them. Colors are applied only when Out is a terminal:
//   - Info:    → Cyan arrow
//   - Fail:    ✘ Red X
//
// The digest itself is never written through this package; it is
// printed undecorated by the caller.
package ui
