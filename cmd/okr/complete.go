package main

import (
	"fmt"
	"strings"
)

var commands = []string{"parse", "query", "import", "export", "ls", "version", "bash", "help"}

func completeCommand(ui UI) error {
	_, err := fmt.Fprintln(ui.Out, strings.Join(commands, " "))
	return err
}
