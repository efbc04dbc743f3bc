package graphics

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"glfwsandbox/internal/frameloop"
)

// Swapped out in tests, which run without a display.
var (
	pollEvents     = glfw.PollEvents
	primaryMonitor = glfw.GetPrimaryMonitor
)

// WindowOptions describes the window created by Open.
type WindowOptions struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window is the GLFW backend of frameloop.Window. Key presses seen by the
// callback are queued and handed back by PollEvents, in arrival order.
type Window struct {
	win    *glfw.Window
	events []frameloop.Event
}

// Open initialises GLFW, creates a window with a 2.0 context and makes it current.
// The caller must be on the main OS thread and must call Close when done.
func Open(opts WindowOptions) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "glfw init")
	}
	glog.Infof("GLFW %s", glfw.GetVersionString())

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	w := &Window{win: win}
	win.SetKeyCallback(w.onKey)
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return w, nil
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	w.events = append(w.events, frameloop.KeyPress{Key: translateKey(key)})
}

func translateKey(key glfw.Key) frameloop.Key {
	switch key {
	case glfw.KeyEscape:
		return frameloop.KeyEscape
	case glfw.KeyEnter:
		return frameloop.KeyEnter
	}
	return frameloop.KeyOther
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Present swaps buffers, waiting for vertical sync when it is enabled.
func (w *Window) Present() {
	w.win.SwapBuffers()
}

// PollEvents processes pending window events and returns the key presses among them.
func (w *Window) PollEvents() []frameloop.Event {
	pollEvents()
	evs := w.events
	w.events = nil
	return evs
}

// PrimaryVideoMode reports false when no monitor is connected.
func (w *Window) PrimaryVideoMode() (frameloop.VideoMode, bool) {
	monitor := primaryMonitor()
	if monitor == nil {
		glog.Warning("no primary monitor, staying windowed")
		return frameloop.VideoMode{}, false
	}
	vm := monitor.GetVideoMode()
	if vm == nil {
		glog.Warning("primary monitor has no video mode, staying windowed")
		return frameloop.VideoMode{}, false
	}
	return frameloop.VideoMode{Width: vm.Width, Height: vm.Height, RefreshRate: vm.RefreshRate}, true
}

func (w *Window) SetDisplay(mode frameloop.DisplayMode, g frameloop.Geometry) {
	var monitor *glfw.Monitor
	if mode == frameloop.Fullscreen {
		if monitor = primaryMonitor(); monitor == nil {
			glog.Warning("no primary monitor, fullscreen request dropped")
			return
		}
	}
	glog.V(1).Infof("display %v at %d,%d %dx%d@%d", mode, g.X, g.Y, g.Width, g.Height, g.RefreshRate)
	w.win.SetMonitor(monitor, g.X, g.Y, g.Width, g.Height, g.RefreshRate)
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

var _ frameloop.Window = (*Window)(nil)
