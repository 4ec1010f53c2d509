// Package main is the entry point for the Monkey interpreter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Woops! We ran into some monkey business here!\n %v\n", err)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
