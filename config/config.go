// Package config loads the optional .monkeyrc.yaml file consulted by the
// REPL and CLI for prompt text, banner visibility, and the default server
// listen address. Its absence is not an error: callers always get a usable
// Config back, falling back to the compiled-in defaults below.
package config

import (
	"os"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

// Config is the shape of .monkeyrc.yaml. Every field has a zero value that
// Load replaces with a default, so a partially-specified file is fine.
type Config struct {
	Prompt      string `yaml:"prompt"`
	ShowBanner  *bool  `yaml:"show_banner"`
	ServerAddr  string `yaml:"server_addr"`
}

const (
	defaultPrompt     = ">> "
	defaultServerAddr = ":4000"
)

// Default returns the compiled-in configuration used when no file is
// present or a field is left unset.
func Default() *Config {
	show := true
	return &Config{
		Prompt:     defaultPrompt,
		ShowBanner: &show,
		ServerAddr: defaultServerAddr,
	}
}

// Load reads path (typically ".monkeyrc.yaml" in the user's working
// directory) and overlays it onto Default. A missing file is not an error;
// any other read or parse failure is wrapped with oops for the caller to
// report.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, oops.Code("config-read-failed").
			With("path", path).
			Wrapf(err, "reading config file")
	}

	overlay := &Config{}
	if err := yaml.Unmarshal(data, overlay); err != nil {
		return nil, oops.Code("config-parse-failed").
			With("path", path).
			Wrapf(err, "parsing config file")
	}

	if overlay.Prompt != "" {
		cfg.Prompt = overlay.Prompt
	}
	if overlay.ShowBanner != nil {
		cfg.ShowBanner = overlay.ShowBanner
	}
	if overlay.ServerAddr != "" {
		cfg.ServerAddr = overlay.ServerAddr
	}

	return cfg, nil
}
