// Command gsync renders a colour triangle swinging left and right and prints how long
// each phase of every frame took. Enter toggles fullscreen, Escape quits.
package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/golang/glog"

	"glfwsandbox/internal/debug"
	"glfwsandbox/internal/engineconfig"
	"glfwsandbox/internal/env"
	"glfwsandbox/internal/frameloop"
	"glfwsandbox/internal/graphics"
	"glfwsandbox/internal/logger"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

var opts = newOptions(flag.CommandLine)

func main() {
	flag.Set("logtostderr", "true")
	flag.Parse()
	code := run()
	glog.Flush()
	os.Exit(code)
}

func run() int {
	if err := env.Load(".env"); err != nil {
		glog.Warningf("ignoring .env: %v", err)
	}
	cfg, err := opts.resolve(flag.CommandLine, os.LookupEnv)
	if err != nil {
		glog.Errorf("config: %v", err)
		return 1
	}
	if *opts.writeConfig {
		if err := engineconfig.Save(*opts.configPath, cfg); err != nil {
			glog.Errorf("write config: %v", err)
			return 1
		}
	}
	glog.V(1).Infof("config %+v", cfg)

	win, err := graphics.Open(graphics.WindowOptions{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.VSync,
	})
	if err != nil {
		glog.Errorf("%v", err)
		return 1
	}
	defer win.Close()

	renderer, err := graphics.NewRenderer()
	if err != nil {
		glog.Errorf("%v", err)
		return 1
	}
	defer renderer.Delete()

	clock, err := graphics.NewClock(cfg.Clock)
	if err != nil {
		glog.Errorf("%v", err)
		return 1
	}

	log, err := logger.New(os.Stdout, cfg.LogFile)
	if err != nil {
		glog.Errorf("%v", err)
		return 1
	}
	defer log.Close()

	st := debug.NewStats()
	ctrl := frameloop.New(win, renderer, clock, frameloop.Options{
		PrintTimes: cfg.PrintTimes,
		Reporter:   frameloop.TextReporter{W: log},
		Observer:   st,
		Windowed: frameloop.Geometry{
			X:           cfg.Window.X,
			Y:           cfg.Window.Y,
			Width:       cfg.Window.Width,
			Height:      cfg.Window.Height,
			RefreshRate: frameloop.DontCare,
		},
	})
	ctrl.Run()

	if cfg.Stats {
		glog.Infof("frame timings:\n%s", st.Summary())
	}
	return 0
}
