package main

import (
	"os"
	"os/user"

	"github.com/monkeylang/monkey/config"
	"github.com/monkeylang/monkey/object"
	"github.com/monkeylang/monkey/repl"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// replConfig holds the flags accepted by `monkey repl`.
type replConfig struct{}

func newReplCmd() *cobra.Command {
	cfg := replConfig{}

	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd, cfg)
		},
	}
}

func runRepl(cmd *cobra.Command, _ replConfig) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return oops.Code("repl-config-load-failed").Wrapf(err, "loading config")
	}

	userName := "stranger"
	if u, err := user.Current(); err == nil && u.Username != "" {
		userName = u.Username
	}

	r := repl.New(cfg.Prompt, userName, cfg.ShowBanner == nil || *cfg.ShowBanner)
	r.Start(os.Stdout, object.NewEnvironment())
	return nil
}
