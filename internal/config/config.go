// Package config loads the YAML configuration shared by the demo
// programs: the host window, the style, logging verbosity and the tool
// windows the demos declare.
package config

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/toolwindows/gui"
)

// Content kinds a configured tool window can show.
const (
	ContentTable    = "table"
	ContentControls = "controls"
	ContentLorem    = "lorem"
)

// Config is the effective demo configuration.
type Config struct {
	Window      WindowConfig       `yaml:"window"`
	Style       string             `yaml:"style"`
	Verbose     bool               `yaml:"verbose"`
	DebugLayout bool               `yaml:"debug_layout"`
	ToolWindows []ToolWindowConfig `yaml:"tool_windows"`
}

// WindowConfig describes the host window. The terminal demo ignores the
// size and uses the terminal's.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ToolWindowConfig declares one tool window. Unset positions and sizes
// fall back to the toolwindows defaults.
type ToolWindowConfig struct {
	Salt        string      `yaml:"salt"`
	Title       string      `yaml:"title"`
	Content     string      `yaml:"content"`
	DefaultPos  *[2]float32 `yaml:"default_pos,omitempty"`
	DefaultSize *[2]float32 `yaml:"default_size,omitempty"`
	Resizable   *[2]bool    `yaml:"resizable,omitempty"`
}

// ValidationError reports an invalid setting and where it is.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1027,
			Height: 768,
			Title:  "Tool windows",
		},
		Style: "dark",
		ToolWindows: []ToolWindowConfig{
			{
				Salt:    "table_tool_window_1",
				Title:   "Example table 1 (drag or collapse me)",
				Content: ContentTable,
			},
			{
				Salt:    "table_tool_window_2",
				Title:   "Example table 2 (drag or collapse me) - very very long title",
				Content: ContentControls,
			},
		},
	}
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("width must be > 0")}
	}
	if c.Window.Height <= 0 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("height must be > 0")}
	}
	switch c.Style {
	case "dark", "light", "default", "auto":
	default:
		return &ValidationError{Path: "style", Err: fmt.Errorf("style must be one of: dark, light, default, auto")}
	}

	seen := make(map[string]struct{}, len(c.ToolWindows))
	for i, tw := range c.ToolWindows {
		path := fmt.Sprintf("tool_windows[%d]", i)
		if strings.TrimSpace(tw.Salt) == "" {
			return &ValidationError{Path: path + ".salt", Err: fmt.Errorf("salt is required")}
		}
		if _, dup := seen[tw.Salt]; dup {
			return &ValidationError{Path: path + ".salt", Err: fmt.Errorf("duplicate salt %q", tw.Salt)}
		}
		seen[tw.Salt] = struct{}{}

		switch tw.Content {
		case ContentTable, ContentControls, ContentLorem:
		default:
			return &ValidationError{Path: path + ".content", Err: fmt.Errorf("content must be one of: table, controls, lorem")}
		}
		if tw.DefaultPos != nil && (tw.DefaultPos[0] < 0 || tw.DefaultPos[1] < 0) {
			return &ValidationError{Path: path + ".default_pos", Err: fmt.Errorf("default_pos values must be >= 0")}
		}
		if tw.DefaultSize != nil && (tw.DefaultSize[0] <= 0 || tw.DefaultSize[1] <= 0) {
			return &ValidationError{Path: path + ".default_size", Err: fmt.Errorf("default_size values must be > 0")}
		}
	}
	return nil
}

// GUIStyle resolves the configured style. "auto" asks darkBackground,
// which may be nil outside a terminal.
func (c *Config) GUIStyle(darkBackground func() bool) gui.Style {
	if c.Style != "auto" {
		return gui.StyleByName(c.Style)
	}
	if darkBackground == nil || darkBackground() {
		return gui.DarkStyle()
	}
	return gui.LightStyle()
}
