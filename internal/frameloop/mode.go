package frameloop

import "fmt"

// DisplayMode is whether the window is bordered or owns the primary monitor.
type DisplayMode int

const (
	Windowed DisplayMode = iota
	Fullscreen
)

func (m DisplayMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Fullscreen:
		return "fullscreen"
	}
	return fmt.Sprintf("DisplayMode(%d)", int(m))
}

// DontCare leaves the refresh rate up to the display subsystem.
const DontCare = -1

// Geometry is a window placement request. RefreshRate is only honoured in fullscreen.
type Geometry struct {
	X, Y          int
	Width, Height int
	RefreshRate   int
}

// VideoMode is the current mode of a monitor.
type VideoMode struct {
	Width, Height int
	RefreshRate   int
}

// DefaultWindowed is where the window goes when leaving fullscreen.
var DefaultWindowed = Geometry{X: 50, Y: 50, Width: 1280, Height: 1024, RefreshRate: DontCare}

// ToggleDisplayMode flips w between windowed and fullscreen and returns the new mode.
// Fullscreen takes the primary monitor's current video mode at the origin, refresh
// rate included. Windowed restores the given geometry with an unconstrained refresh rate.
// With no primary monitor the window stays windowed.
func ToggleDisplayMode(w Window, windowed Geometry, current DisplayMode) DisplayMode {
	if current == Fullscreen {
		g := windowed
		g.RefreshRate = DontCare
		w.SetDisplay(Windowed, g)
		return Windowed
	}
	vm, ok := w.PrimaryVideoMode()
	if !ok {
		return current
	}
	w.SetDisplay(Fullscreen, Geometry{
		Width:       vm.Width,
		Height:      vm.Height,
		RefreshRate: vm.RefreshRate,
	})
	return Fullscreen
}
