package progress

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/repoclone/internal/utils"
)

type barPhase int

const (
	phaseIdle barPhase = iota
	phaseReceiving
	phaseResolving
	phaseCheckout
)

// BarRenderer draws one progress bar per clone phase: receiving objects,
// resolving deltas, checking out files.
type BarRenderer struct {
	w     io.Writer
	bar   *progressbar.ProgressBar
	phase barPhase
}

// NewBarRenderer creates a BarRenderer writing to w
func NewBarRenderer(w io.Writer) *BarRenderer {
	return &BarRenderer{w: w}
}

// Render advances the bar for the current phase, starting a new bar when the phase changes
func (r *BarRenderer) Render(t *TransferTracker, c *CheckoutTracker) {
	phase, current, total, desc := classify(t, c)

	if r.bar == nil || phase != r.phase {
		if r.bar != nil {
			_ = r.bar.Finish()
		}
		r.bar = utils.NewProgressBar(r.w, barMax(total), desc)
		r.phase = phase
	} else {
		r.bar.Describe(desc)
		if total > 0 {
			r.bar.ChangeMax64(int64(total))
		}
	}

	_ = r.bar.Set64(int64(current))
}

// Finish completes the last bar
func (r *BarRenderer) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// Fail clears the bar and prints err
func (r *BarRenderer) Fail(err error) {
	if r.bar != nil {
		_ = r.bar.Clear()
	}
	fmt.Fprintf(r.w, "error: %v\n", err)
}

func classify(t *TransferTracker, c *CheckoutTracker) (barPhase, uint64, uint64, string) {
	if co, ok := c.Latest(); ok && co.Total > 0 {
		return phaseCheckout, co.Current, co.Total, utils.DescCheckout
	}

	s, _ := t.Latest()
	if t.Complete() {
		return phaseResolving, s.IndexedDeltas, s.TotalDeltas, utils.DescResolving
	}

	desc := fmt.Sprintf("%s (%s)", utils.DescReceiving, humanize.IBytes(s.ReceivedBytes))
	return phaseReceiving, s.ReceivedObjects, s.TotalObjects, desc
}

// barMax maps an unknown total to spinner mode
func barMax(total uint64) int64 {
	if total == 0 {
		return -1
	}
	return int64(total)
}
