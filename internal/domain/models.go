package domain

import "time"

// TransferSnapshot is a cumulative reading of the network fetch, as reported
// by the clone backend. Each snapshot replaces the previous one.
type TransferSnapshot struct {
	ReceivedBytes   uint64
	ReceivedObjects uint64
	TotalObjects    uint64
	IndexedObjects  uint64
	IndexedDeltas   uint64
	TotalDeltas     uint64
}

// CheckoutSnapshot is a cumulative reading of the working tree checkout.
// Path is empty until the first file is visited.
type CheckoutSnapshot struct {
	Current uint64
	Total   uint64
	Path    string
}

// CloneRequest describes a single clone operation
type CloneRequest struct {
	URL    string
	Path   string
	Branch string // Empty means the remote default branch
	Bare   bool   // Bare clones have no checkout phase

	// AuthToken is used for HTTPS basic auth when set
	AuthToken string

	// IgnoreCertErrors accepts invalid TLS certificates
	IgnoreCertErrors bool
}

// CloneResult contains the outcome of a successful clone
type CloneResult struct {
	Path     string
	Transfer TransferSnapshot
	Checkout CheckoutSnapshot
	Duration time.Duration
	Head     *HeadInfo // nil for bare clones or when HEAD could not be read
}

// RemoteInfo describes what a remote advertises before cloning
type RemoteInfo struct {
	URL           string
	DefaultBranch string
	Refs          int
}

// HeadInfo describes the HEAD of a local repository
type HeadInfo struct {
	Branch string
	Commit string
}

// ShortCommit returns the abbreviated commit hash
func (h HeadInfo) ShortCommit() string {
	if len(h.Commit) > 7 {
		return h.Commit[:7]
	}
	return h.Commit
}

// Starter is a named project template that can be cloned from the menu
type Starter struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url" yaml:"url"`
}
