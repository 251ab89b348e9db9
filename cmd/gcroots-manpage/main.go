package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gcroots/cmd/gcroots"
	"github.com/arthur-debert/gcroots/internal/version"
)

func main() {
	rootCmd := gcroots.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "GCROOTS",
		Section: "1",
		Source:  "gcroots " + version.Version,
		Manual:  "gcroots manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
