package debug

import (
	"fmt"
	"strings"
	"time"

	"glfwsandbox/internal/frameloop"
)

var phaseNames = [5]string{"update", "draw", "swap", "poll", "print"}

type phaseStats struct {
	min, max, sum time.Duration
}

func (p *phaseStats) add(d time.Duration, first bool) {
	if first || d < p.min {
		p.min = d
	}
	if d > p.max {
		p.max = d
	}
	p.sum += d
}

// Stats accumulates per-phase minimum, maximum and mean over every observed frame.
// The print phase of a sample belongs to the frame before it, so it is folded in as is.
type Stats struct {
	frames uint64
	total  time.Duration
	phases [5]phaseStats
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{}
}

// Observe implements frameloop.Observer.
func (s *Stats) Observe(sample frameloop.Sample) {
	first := s.frames == 0
	for i, d := range sample.Phases() {
		s.phases[i].add(d, first)
	}
	s.frames++
	s.total += sample.Total
}

// Frames returns how many samples were observed.
func (s *Stats) Frames() uint64 {
	return s.frames
}

// FPS is frames over the summed frame time, or 0 before any time has passed.
func (s *Stats) FPS() float64 {
	if s.total <= 0 {
		return 0
	}
	return float64(s.frames) / s.total.Seconds()
}

// Mean returns the mean duration of the named phase.
func (s *Stats) Mean(phase string) time.Duration {
	for i, name := range phaseNames {
		if name == phase && s.frames > 0 {
			return s.phases[i].sum / time.Duration(s.frames)
		}
	}
	return 0
}

// Summary renders one header line and one line per phase, in milliseconds.
func (s *Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d frames, %.2f fps\n", s.frames, s.FPS())
	if s.frames == 0 {
		return b.String()
	}
	for i, name := range phaseNames {
		p := s.phases[i]
		fmt.Fprintf(&b, "%-6s min %6.2fms  avg %6.2fms  max %6.2fms\n",
			name, msec(p.min), msec(s.Mean(name)), msec(p.max))
	}
	return b.String()
}

func msec(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
