// Command dotapt-manpage writes the dotapt(1) man page to stdout for
// packaging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotapt/cmd/dotapt"
	"github.com/arthur-debert/dotapt/internal/version"
)

func main() {
	rootCmd := dotapt.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTAPT",
		Section: "1",
		Source:  "dotapt " + version.Version,
		Manual:  "dotapt manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
