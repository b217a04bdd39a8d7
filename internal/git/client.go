package git

import (
	"context"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
)

// RealClient implements Client using go-git
type RealClient struct{}

// NewClient creates a new RealClient
func NewClient() *RealClient {
	return &RealClient{}
}

// ListRemote lists remote references without fetching objects, like git ls-remote
func (c *RealClient) ListRemote(ctx context.Context, url string, o *git.ListOptions) ([]*plumbing.Reference, error) {
	remote := git.NewRemote(memory.NewStorage(), &config.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{url},
	})
	return remote.ListContext(ctx, o)
}

// PlainOpen calls git.PlainOpen
func (c *RealClient) PlainOpen(path string) (*git.Repository, error) {
	return git.PlainOpen(path)
}
