// minire searches text with miniregex patterns and generates Go code for
// precompiled patterns.
package main

import (
	"os"

	"github.com/duarterr/miniregex/cmd/minire/command"
)

func main() {
	root := command.NewRoot(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(command.Execute(root))
}
