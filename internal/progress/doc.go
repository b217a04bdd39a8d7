// Package progress turns clone progress callbacks into terminal output.
//
// A Controller owns one TransferTracker, one CheckoutTracker and a Renderer
// for the lifetime of a single clone. Every callback updates the matching
// tracker and redraws immediately.
//
// Architecture:
//   - TransferTracker: latest network and indexing snapshot
//   - CheckoutTracker: latest working tree checkout snapshot
//   - LineRenderer: single carriage-return line with a one-time phase newline
//   - BarRenderer: progress bar per phase
//   - Controller: implements domain.ProgressCallbacks
//
// Usage:
//
//	ctrl := progress.NewController(ctx, progress.NewLineRenderer(os.Stdout))
//	err := cloner.Clone(ctx, req, ctrl)
//	if err != nil {
//	    ctrl.Fail(err)
//	} else {
//	    ctrl.Finish()
//	}
package progress
