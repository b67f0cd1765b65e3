package main

import (
	"fmt"
)

// Set at build time via -ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = ""
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "okr version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
