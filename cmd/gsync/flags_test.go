package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func parseOptions(t *testing.T, args ...string) (*options, *flag.FlagSet) {
	t.Helper()
	fs := flag.NewFlagSet("gsync", flag.ContinueOnError)
	o := newOptions(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return o, fs
}

func envLookup(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestResolveUnsetFlagsKeepFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsync.yaml")
	if err := os.WriteFile(path, []byte("stats: false\nvsync: false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	o, fs := parseOptions(t, "-config", path)
	cfg, err := o.resolve(fs, envLookup(map[string]string{
		"GSYNC_PRINT_TIMES": "false",
		"GSYNC_CLOCK":       "hrtime",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Stats || cfg.VSync {
		t.Errorf("flag defaults overrode the file: %+v", cfg)
	}
	if cfg.PrintTimes || cfg.Clock != "hrtime" {
		t.Errorf("flag defaults overrode the environment: %+v", cfg)
	}
}

func TestResolveSetFlagsOverrideEnv(t *testing.T) {
	o, fs := parseOptions(t,
		"-config", filepath.Join(t.TempDir(), "missing.yaml"),
		"-vsync=false", "-clock", "glfw", "-log-file", "t.log", "-stats=false", "-print-times=true")
	cfg, err := o.resolve(fs, envLookup(map[string]string{
		"GSYNC_VSYNC":       "true",
		"GSYNC_CLOCK":       "hrtime",
		"GSYNC_PRINT_TIMES": "false",
		"GSYNC_LOG_FILE":    "env.log",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VSync || cfg.Clock != "glfw" || cfg.LogFile != "t.log" || cfg.Stats || !cfg.PrintTimes {
		t.Fatalf("flags not applied over env: %+v", cfg)
	}
}

func TestResolveRejectsInvalidConfig(t *testing.T) {
	o, fs := parseOptions(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"), "-clock", "sundial")
	if _, err := o.resolve(fs, envLookup(nil)); err == nil {
		t.Fatal("expected validation error for unknown clock")
	}
}
