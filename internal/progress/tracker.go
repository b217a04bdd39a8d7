package progress

import (
	"math/bits"

	"github.com/quantmind-br/repoclone/internal/domain"
)

// percent returns floor(100*n/total), or 0 when total is 0
func percent(n, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	if n >= total {
		return 100
	}
	// 128-bit product so large counters cannot wrap
	hi, lo := bits.Mul64(100, n)
	q, _ := bits.Div64(hi, lo, total)
	return q
}

// TransferTracker holds the latest transfer snapshot
type TransferTracker struct {
	latest domain.TransferSnapshot
	seen   bool
}

// Update replaces the latest snapshot. Snapshots are cumulative, nothing is summed.
func (t *TransferTracker) Update(s domain.TransferSnapshot) {
	t.latest = s
	t.seen = true
}

// Latest returns the latest snapshot and whether one was reported.
// Before the first update it returns the zero snapshot.
func (t *TransferTracker) Latest() (domain.TransferSnapshot, bool) {
	return t.latest, t.seen
}

// NetworkPercent is the share of objects received
func (t *TransferTracker) NetworkPercent() uint64 {
	return percent(t.latest.ReceivedObjects, t.latest.TotalObjects)
}

// IndexPercent is the share of objects indexed
func (t *TransferTracker) IndexPercent() uint64 {
	return percent(t.latest.IndexedObjects, t.latest.TotalObjects)
}

// KiloBytes is the received byte count in whole KiB
func (t *TransferTracker) KiloBytes() uint64 {
	return t.latest.ReceivedBytes / 1024
}

// Complete reports whether every object has been received.
// A transfer with zero total objects is never complete.
func (t *TransferTracker) Complete() bool {
	return t.latest.TotalObjects > 0 && t.latest.ReceivedObjects == t.latest.TotalObjects
}

// CheckoutTracker holds the latest checkout snapshot
type CheckoutTracker struct {
	latest domain.CheckoutSnapshot
	seen   bool
}

// Update replaces the latest snapshot
func (c *CheckoutTracker) Update(s domain.CheckoutSnapshot) {
	c.latest = s
	c.seen = true
}

// Latest returns the latest snapshot and whether one was reported
func (c *CheckoutTracker) Latest() (domain.CheckoutSnapshot, bool) {
	return c.latest, c.seen
}

// Percent is the share of files checked out. An empty tree reports 0.
func (c *CheckoutTracker) Percent() uint64 {
	return percent(c.latest.Current, c.latest.Total)
}
