package main

import (
	"github.com/spf13/cobra"
)

// configPath is the global flag shared by every subcommand, pointing at
// the .monkeyrc.yaml to load.
var configPath string

// NewRootCmd builds the monkey CLI's command tree: repl (default), run,
// server, and version.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monkey",
		Short: "Monkey - a small tree-walking interpreter",
		Long: `Monkey is an interpreted language with C-like syntax, first-class
functions, closures, and built-in arrays and hashes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, replConfig{})
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", ".monkeyrc.yaml", "path to config file")

	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newServerCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
