// confdoc inspects, edits and converts mod config files from the command
// line, exercising the same engine the editor UI embeds.
package main

import (
	"os"

	"github.com/modsmith/confdoc/cmd/confdoc/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		os.Exit(1)
	}
}
