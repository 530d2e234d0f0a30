package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"
)

// Meter renders a carriage-return percentage on stderr as the codec
// walks image rows. Updates are throttled so that large images don't
// drown the terminal in rewrites; the final row always renders.
type Meter struct {
	w       io.Writer
	enabled bool
	limiter *rate.Limiter
	dirty   bool
}

const updatesPerSecond = 30

// NewMeter builds a meter over f. The meter is inert when disabled is
// set or when f is not a terminal, so piped and scripted runs stay
// quiet.
func NewMeter(f *os.File, disabled bool) *Meter {
	enabled := !disabled && isatty.IsTerminal(f.Fd())
	return newMeter(f, enabled)
}

func newMeter(w io.Writer, enabled bool) *Meter {
	return &Meter{
		w:       w,
		enabled: enabled,
		limiter: rate.NewLimiter(updatesPerSecond, 1),
	}
}

// Step records that rows of totalRows have completed. Satisfies
// codec.ProgressFunc.
func (m *Meter) Step(rows, totalRows int) {
	if !m.enabled || totalRows == 0 {
		return
	}
	if rows < totalRows && !m.limiter.Allow() {
		return
	}
	percent := float64(rows) / float64(totalRows) * 100
	fmt.Fprintf(m.w, "\r%.2f%%", percent)
	m.dirty = true
}

// Done terminates the meter line. Safe to call on an inert or unused
// meter.
func (m *Meter) Done() {
	if m.dirty {
		fmt.Fprintln(m.w)
		m.dirty = false
	}
}
