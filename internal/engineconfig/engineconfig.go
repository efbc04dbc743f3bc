package engineconfig

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file, relative to the process working directory.
const ConfigPath = "config/gsync.yaml"

// Window holds the window title and the windowed geometry. Width and Height are used
// both for the initial window and when leaving fullscreen; X and Y only for the latter.
type Window struct {
	Title  string `yaml:"title"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Config is the startup configuration. None of it changes once the loop runs.
type Config struct {
	VSync      bool   `yaml:"vsync"`
	PrintTimes bool   `yaml:"print_times"`
	LogFile    string `yaml:"log_file,omitempty"`
	Clock      string `yaml:"clock"`
	Stats      bool   `yaml:"stats"`
	Window     Window `yaml:"window"`
}

// Default returns vsync on, per-frame timing on, and a 1280x1024 window at 50,50.
func Default() Config {
	return Config{
		VSync:      true,
		PrintTimes: true,
		Clock:      "glfw",
		Stats:      true,
		Window: Window{
			Title:  "Gsync sample",
			X:      50,
			Y:      50,
			Width:  1280,
			Height: 1024,
		},
	}
}

// Load reads path over Default(). A missing file yields the defaults; a file
// that exists but does not parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrapf(err, "parse %s", path)
	}
	return cfg, nil
}

// Save writes c to path, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return os.WriteFile(path, data, 0644)
}

// Environment variables read by ApplyEnv.
const (
	EnvVSync      = "GSYNC_VSYNC"
	EnvPrintTimes = "GSYNC_PRINT_TIMES"
	EnvLogFile    = "GSYNC_LOG_FILE"
	EnvClock      = "GSYNC_CLOCK"
)

// ApplyEnv overrides c with any of the GSYNC_* variables that lookup finds.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvVSync); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvVSync)
		}
		c.VSync = b
	}
	if v, ok := lookup(EnvPrintTimes); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvPrintTimes)
		}
		c.PrintTimes = b
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvClock); ok {
		c.Clock = v
	}
	return nil
}

// Validate rejects settings the program cannot start with.
func (c Config) Validate() error {
	switch c.Clock {
	case "glfw", "hrtime":
	default:
		return errors.Errorf("unknown clock %q (want glfw or hrtime)", c.Clock)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	return nil
}
