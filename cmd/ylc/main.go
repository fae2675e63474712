// Command ylc is the YL compiler front-end's CLI entry point, the
// direct descendant of the teacher's flat src/main.go driver, now
// split into a cobra command tree (cmd/ylc/cmd).
package main

import (
	"fmt"
	"os"

	"ylc/cmd/ylc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
