package utils

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Standard progress bar descriptions
const (
	DescReceiving = "Receiving objects"
	DescResolving = "Resolving deltas"
	DescCheckout  = "Checking out files"
)

// NewProgressBar creates a consistently styled progress bar.
//
// Parameters:
//   - w: Destination of the bar output.
//   - total: Total number of items. Use -1 for unknown totals (indeterminate/spinner mode).
//   - description: Text description to show before the progress bar (e.g., DescReceiving).
//
// Behavior:
//   - For unknown totals (total < 0): Uses spinner type 14 with blank state rendering.
//   - For known totals (total >= 0): Shows count and iterations/second (its).
//   - All progress bars show count and end with a newline when finished.
//
// Example:
//
//	bar := utils.NewProgressBar(os.Stdout, int64(total), utils.DescCheckout)
//	defer bar.Finish()
//
//	for i := range files {
//	    bar.Set64(int64(i + 1))
//	}
func NewProgressBar(w io.Writer, total int64, description string) *progressbar.ProgressBar {
	// Build common options
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	}

	// Add options based on whether total is known
	if total < 0 {
		// Unknown total: use spinner mode
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		// Known total: show iterations/second
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions64(total, opts...)
}
