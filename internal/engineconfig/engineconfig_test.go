package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
	if !cfg.VSync || !cfg.PrintTimes {
		t.Fatal("vsync and print_times must default to on")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsync.yaml")
	data := "vsync: false\nclock: hrtime\nwindow:\n  width: 800\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VSync {
		t.Error("vsync not overridden")
	}
	if cfg.Clock != "hrtime" {
		t.Errorf("clock = %q", cfg.Clock)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 1024 {
		t.Errorf("window = %+v, want 800x1024", cfg.Window)
	}
	if !cfg.PrintTimes {
		t.Error("print_times lost its default")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gsync.yaml")
	if err := os.WriteFile(path, []byte("vsync: [nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "gsync.yaml")
	want := Default()
	want.LogFile = "times.log"
	want.Window.Title = "demo"
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvVSync:      "0",
		EnvPrintTimes: "false",
		EnvLogFile:    "/tmp/t.log",
		EnvClock:      "hrtime",
	}
	cfg := Default()
	err := cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VSync || cfg.PrintTimes || cfg.LogFile != "/tmp/t.log" || cfg.Clock != "hrtime" {
		t.Fatalf("env not applied: %+v", cfg)
	}

	cfg = Default()
	err = cfg.ApplyEnv(func(k string) (string, bool) {
		if k == EnvVSync {
			return "sometimes", true
		}
		return "", false
	})
	if err == nil {
		t.Fatal("expected error for non-boolean GSYNC_VSYNC")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
	c := Default()
	c.Clock = "sundial"
	if c.Validate() == nil {
		t.Error("unknown clock accepted")
	}
	c = Default()
	c.Window.Height = 0
	if c.Validate() == nil {
		t.Error("zero height accepted")
	}
}
