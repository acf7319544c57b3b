package demo

import (
	"github.com/go-theft-auto/toolwindows/gui"
	"github.com/go-theft-auto/toolwindows/internal/config"
	"github.com/go-theft-auto/toolwindows/toolwindows"
)

// LoadConfig loads the config at path (defaults when empty), names the
// host window title unless the file did, and applies the verbosity to
// every package that logs.
func LoadConfig(path, title string, verbose bool) (*config.Config, error) {
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	if cfg.Window.Title == config.DefaultConfig().Window.Title {
		cfg.Window.Title = title
	}

	SetLogging(verbose || cfg.Verbose)
	return cfg, nil
}

// SetLogging switches debug logging of the gui, toolwindows and demo
// packages.
func SetLogging(verbose bool) {
	gui.SetVerbose(verbose)
	toolwindows.SetVerbose(verbose)
	SetVerbose(verbose)
}
