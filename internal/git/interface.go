package git

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Client defines the interface for Git operations
type Client interface {
	// ListRemote lists the references advertised by a remote
	ListRemote(ctx context.Context, url string, o *git.ListOptions) ([]*plumbing.Reference, error)
	// PlainOpen opens a local repository
	PlainOpen(path string) (*git.Repository, error)
}

// Ensure RealClient implements Client
var _ Client = (*RealClient)(nil)
