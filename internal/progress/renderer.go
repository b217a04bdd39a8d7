package progress

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Display styles
const (
	StyleLine = "line"
	StyleBar  = "bar"
	StyleNone = "none"
)

// Renderer draws the combined state of both trackers
type Renderer interface {
	// Render redraws after a tracker update
	Render(t *TransferTracker, c *CheckoutTracker)
	// Finish leaves the display ready for further output
	Finish()
	// Fail reports err in place of further progress
	Fail(err error)
}

// NewRenderer creates the renderer for a display style
func NewRenderer(style string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(style) {
	case "", StyleLine:
		return NewLineRenderer(w), nil
	case StyleBar:
		return NewBarRenderer(w), nil
	case StyleNone:
		return NopRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown display style %q", style)
	}
}

// LineRenderer rewrites a single status line in place using carriage returns.
// When the transfer completes it moves to a new line once and switches to
// delta resolution output.
type LineRenderer struct {
	w              *bufio.Writer
	newlineEmitted bool
	rendered       bool
}

// NewLineRenderer creates a LineRenderer writing to w
func NewLineRenderer(w io.Writer) *LineRenderer {
	return &LineRenderer{w: bufio.NewWriter(w)}
}

// Render writes the current line and flushes
func (r *LineRenderer) Render(t *TransferTracker, c *CheckoutTracker) {
	if t.Complete() {
		if !r.newlineEmitted {
			r.w.WriteString("\n")
			r.newlineEmitted = true
		}
		r.w.WriteString(ResolvingLine(t))
	} else {
		r.w.WriteString(StatusLine(t, c))
	}
	r.w.WriteString("\r")
	r.rendered = true
	r.w.Flush()
}

// Finish writes the trailing newline
func (r *LineRenderer) Finish() {
	r.w.WriteString("\n")
	r.w.Flush()
}

// Fail moves past the progress line and prints err
func (r *LineRenderer) Fail(err error) {
	if r.rendered {
		r.w.WriteString("\n")
	}
	fmt.Fprintf(r.w, "error: %v\n", err)
	r.w.Flush()
}

// StatusLine formats the combined network, index and checkout line
func StatusLine(t *TransferTracker, c *CheckoutTracker) string {
	s, _ := t.Latest()
	co, _ := c.Latest()
	return fmt.Sprintf("net %3d%% (%4d kb, %5d/%5d)  /  idx %3d%% (%5d/%5d)  /  chk %3d%% (%4d/%4d) %s",
		t.NetworkPercent(), t.KiloBytes(), s.ReceivedObjects, s.TotalObjects,
		t.IndexPercent(), s.IndexedObjects, s.TotalObjects,
		c.Percent(), co.Current, co.Total,
		co.Path)
}

// ResolvingLine formats the delta resolution line
func ResolvingLine(t *TransferTracker) string {
	s, _ := t.Latest()
	return fmt.Sprintf("Resolving deltas %d/%d", s.IndexedDeltas, s.TotalDeltas)
}

// NopRenderer discards all output
type NopRenderer struct{}

func (NopRenderer) Render(*TransferTracker, *CheckoutTracker) {}
func (NopRenderer) Finish()                                   {}
func (NopRenderer) Fail(error)                                {}
