package graphics

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"
	"github.com/pkg/errors"

	"glfwsandbox/internal/frameloop"
)

// Clock names accepted by NewClock.
const (
	ClockGLFW   = "glfw"
	ClockHRTime = "hrtime"
)

// GLFWClock reads glfw.GetTime. GLFW must be initialised.
type GLFWClock struct{}

func (GLFWClock) Now() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

// HRClock reads the process-relative high resolution timer.
type HRClock struct{}

func (HRClock) Now() time.Duration {
	return hrtime.Now()
}

// NewClock returns the clock registered under name.
func NewClock(name string) (frameloop.Clock, error) {
	switch name {
	case ClockGLFW:
		return GLFWClock{}, nil
	case ClockHRTime:
		return HRClock{}, nil
	}
	return nil, errors.Errorf("unknown clock %q", name)
}
