package frameloop

import (
	"fmt"
	"time"
)

// Clock reports monotonic time elapsed since some fixed epoch.
type Clock interface {
	Now() time.Duration
}

// Sample is the timing record of one loop iteration.
//
// PrevPrint is the cost of reporting the previous sample. Reporting has to finish
// before it can be measured, so its cost always shows up one frame late.
type Sample struct {
	Frame   uint64
	Elapsed time.Duration // since the loop started
	Total   time.Duration // since the previous iteration's sample point

	Update    time.Duration
	Draw      time.Duration
	Swap      time.Duration
	Poll      time.Duration
	PrevPrint time.Duration
}

// Phases returns the five measured durations in report order.
func (s Sample) Phases() [5]time.Duration {
	return [5]time.Duration{s.Update, s.Draw, s.Swap, s.Poll, s.PrevPrint}
}

// Reporter consumes samples when timing output is enabled.
type Reporter interface {
	Report(Sample)
}

// Observer sees every sample, regardless of whether timing output is enabled.
type Observer interface {
	Observe(Sample)
}

// LineWriter is where TextReporter sends formatted lines.
type LineWriter interface {
	Log(line string)
}

// TextReporter formats each sample as one console line.
type TextReporter struct {
	W LineWriter
}

func (r TextReporter) Report(s Sample) {
	r.W.Log(FormatSample(s))
}

// FormatSample renders s in the fixed two-decimal millisecond layout.
func FormatSample(s Sample) string {
	return fmt.Sprintf("Frame #%4d Total: %6.2fms | update: %6.2fms. draw: %6.2fms, swap: %6.2fms, poll: %6.2fms, prev. print: %6.2fms,",
		s.Frame, ms(s.Total), ms(s.Update), ms(s.Draw), ms(s.Swap), ms(s.Poll), ms(s.PrevPrint))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// since is b-a, clamped so a clock that steps backwards never yields a negative phase.
func since(a, b time.Duration) time.Duration {
	if b < a {
		return 0
	}
	return b - a
}
