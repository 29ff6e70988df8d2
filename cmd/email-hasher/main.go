package main

import (
	"os"

	"github.com/rickgorman/email-hasher/internal/hasher"
	"github.com/rickgorman/email-hasher/internal/ui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0-dev"

func main() {
	ui.SetOutput(os.Stdout)

	h := &hasher.Hasher{
		Stdout:  os.Stdout,
		Dir:     ".",
		Version: version,
	}
	os.Exit(h.Run(os.Args))
}
