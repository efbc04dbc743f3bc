package main

import (
	"flag"

	"glfwsandbox/internal/engineconfig"
)

// options are the command-line flags. Config flags only override the file and
// environment when they were set explicitly.
type options struct {
	configPath  *string
	writeConfig *bool
	vsync       *bool
	printTimes  *bool
	logFile     *string
	clock       *string
	stats       *bool
}

func newOptions(fs *flag.FlagSet) *options {
	return &options{
		configPath:  fs.String("config", engineconfig.ConfigPath, "config file"),
		writeConfig: fs.Bool("write-config", false, "write the resolved config to -config and continue"),
		vsync:       fs.Bool("vsync", true, "wait for vertical sync on present"),
		printTimes:  fs.Bool("print-times", true, "print per-frame timings"),
		logFile:     fs.String("log-file", "", "also append timings to this file"),
		clock:       fs.String("clock", "glfw", "timing clock: glfw or hrtime"),
		stats:       fs.Bool("stats", true, "print per-phase statistics at exit"),
	}
}

// resolve layers the config file, the variables lookup finds, and the flags set on fs.
func (o *options) resolve(fs *flag.FlagSet, lookup func(string) (string, bool)) (engineconfig.Config, error) {
	cfg, err := engineconfig.Load(*o.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "vsync":
			cfg.VSync = *o.vsync
		case "print-times":
			cfg.PrintTimes = *o.printTimes
		case "log-file":
			cfg.LogFile = *o.logFile
		case "clock":
			cfg.Clock = *o.clock
		case "stats":
			cfg.Stats = *o.stats
		}
	})
	return cfg, cfg.Validate()
}
