package frameloop

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// Window is the display side of the loop: presenting frames, input, and placement.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	FramebufferSize() (width, height int)
	Present()
	PollEvents() []Event
	PrimaryVideoMode() (VideoMode, bool)
	SetDisplay(mode DisplayMode, g Geometry)
}

// Renderer draws the payload. It is set up once before the loop starts.
type Renderer interface {
	Viewport(width, height int)
	Update(offset mgl32.Vec2)
	Draw()
}

// Options configures a Controller. The zero value reports nothing and restores
// DefaultWindowed when leaving fullscreen.
type Options struct {
	PrintTimes bool
	Reporter   Reporter // used only when PrintTimes is set
	Observer   Observer
	Windowed   Geometry
}

// Controller owns the render/present/poll cycle, the display mode and the timing samples.
// It must be driven from the thread that owns the window's context.
type Controller struct {
	window   Window
	renderer Renderer
	clock    Clock
	opts     Options

	mode      DisplayMode
	frame     uint64
	start     time.Duration
	last      time.Duration
	prevPrint time.Duration
}

// New returns a Controller in windowed mode. The loop's start time is taken now.
func New(w Window, r Renderer, c Clock, opts Options) *Controller {
	if opts.Windowed == (Geometry{}) {
		opts.Windowed = DefaultWindowed
	}
	now := c.Now()
	return &Controller{
		window:   w,
		renderer: r,
		clock:    c,
		opts:     opts,
		mode:     Windowed,
		start:    now,
		last:     now,
	}
}

// Mode returns the current display mode.
func (c *Controller) Mode() DisplayMode {
	return c.mode
}

// Run steps the loop until the window is asked to close. The close flag is only
// consulted between iterations; a frame in flight always completes.
func (c *Controller) Run() {
	for !c.window.ShouldClose() {
		c.Step()
	}
}

// Step runs a single iteration and returns its timing sample.
func (c *Controller) Step() Sample {
	t := c.clock.Now()

	width, height := c.window.FramebufferSize()
	c.renderer.Viewport(width, height)
	c.renderer.Update(ComputeUniform(c.clock.Now().Seconds()))
	update := since(t, c.clock.Now())
	t = c.clock.Now()

	c.renderer.Draw()
	draw := since(t, c.clock.Now())
	t = c.clock.Now()

	c.window.Present()
	swap := since(t, c.clock.Now())
	t = c.clock.Now()

	events := c.window.PollEvents()
	poll := since(t, c.clock.Now())

	newTime := c.clock.Now()
	c.frame++
	s := Sample{
		Frame:     c.frame,
		Elapsed:   since(c.start, newTime),
		Total:     since(c.last, newTime),
		Update:    update,
		Draw:      draw,
		Swap:      swap,
		Poll:      poll,
		PrevPrint: c.prevPrint,
	}
	c.last = newTime

	if c.opts.PrintTimes && c.opts.Reporter != nil {
		c.opts.Reporter.Report(s)
		c.prevPrint = since(newTime, c.clock.Now())
	}
	// Observed after the print cost is taken so PrevPrint stays the reporting cost alone.
	if c.opts.Observer != nil {
		c.opts.Observer.Observe(s)
	}

	for _, ev := range events {
		c.dispatch(ev)
	}
	return s
}

func (c *Controller) dispatch(ev Event) {
	kp, ok := ev.(KeyPress)
	if !ok {
		return
	}
	switch kp.Key {
	case KeyEscape:
		c.window.SetShouldClose(true)
	case KeyEnter:
		c.mode = ToggleDisplayMode(c.window, c.opts.Windowed, c.mode)
	}
}

// ComputeUniform returns the triangle's base offset at the given time in seconds:
// a horizontal swing of cos(t), with y held at zero.
func ComputeUniform(elapsed float64) mgl32.Vec2 {
	return mgl32.Vec2{float32(math.Cos(elapsed)), 0}
}
