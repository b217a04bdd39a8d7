package domain

import "context"

// ProgressCallbacks receives progress from a clone backend.
//
// Transfer callbacks arrive first, followed by checkout callbacks. Calls are
// never concurrent.
type ProgressCallbacks interface {
	// OnTransfer receives the latest transfer snapshot. Returning false asks
	// the backend to abort the fetch.
	OnTransfer(s TransferSnapshot) bool
	// OnCheckout receives checkout progress. Path may be empty.
	OnCheckout(path string, current, total uint64)
}

// Cloner fetches a remote repository and checks out its working tree
type Cloner interface {
	Clone(ctx context.Context, req CloneRequest, cb ProgressCallbacks) error
}

// RemoteProber inspects a remote and a local repository without cloning
type RemoteProber interface {
	// Probe lists the remote references
	Probe(ctx context.Context, url, authToken string) (*RemoteInfo, error)
	// Head reads HEAD of the repository at path
	Head(path string) (*HeadInfo, error)
}
