package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// VersionCmd prints the compiler's version and exits.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the hamlc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hamlc " + Version)
	},
}
