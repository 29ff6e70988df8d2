// Package hasher runs the email-hasher pipeline: validate, digest, emit.
//
// Run returns the process exit status instead of exiting, so the whole
// command can be driven from tests against a temporary directory.
//
//	h := &hasher.Hasher{Stdout: os.Stdout, Dir: ".", Version: version}
//	os.Exit(h.Run(os.Args))
//
// Every error ends the run with ExitFailure. Argument and format errors
// are detected before any hashing or file-system work, so hash.email is
// left untouched on those paths.
package hasher
