package git

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/utils"
)

// Ensure Prober implements domain.RemoteProber
var _ domain.RemoteProber = (*Prober)(nil)

// Prober lists remotes and inspects local repositories with go-git
type Prober struct {
	client   Client
	retrier  *Retrier
	logger   *utils.Logger
	insecure bool
}

// ProberOptions contains options for creating a Prober
type ProberOptions struct {
	Client          Client
	Retrier         *Retrier
	Logger          *utils.Logger
	InsecureSkipTLS bool
}

// NewProber creates a new Prober
func NewProber(opts ProberOptions) *Prober {
	client := opts.Client
	if client == nil {
		client = NewClient()
	}
	retrier := opts.Retrier
	if retrier == nil {
		retrier = NewRetrier(DefaultRetrierOptions())
	}
	return &Prober{
		client:   client,
		retrier:  retrier,
		logger:   opts.Logger,
		insecure: opts.InsecureSkipTLS,
	}
}

// Probe lists the remote references and detects the default branch.
// An empty remote is not an error.
func (p *Prober) Probe(ctx context.Context, url, authToken string) (*domain.RemoteInfo, error) {
	opts := &git.ListOptions{
		Auth:            AuthFor(url, authToken),
		InsecureSkipTLS: p.insecure,
	}

	attempt := 0
	refs, err := RetryWithValue(ctx, p.retrier, func() ([]*plumbing.Reference, error) {
		attempt++
		refs, err := p.client.ListRemote(ctx, url, opts)
		if err != nil && p.logger != nil {
			p.logger.Debug().Err(err).Int("attempt", attempt).Str("url", url).Msg("Listing remote failed")
		}
		return refs, classifyListError(err)
	})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return &domain.RemoteInfo{URL: url}, nil
	}
	if err != nil {
		return nil, domain.NewProbeError(url, err)
	}

	return &domain.RemoteInfo{
		URL:           url,
		DefaultBranch: DefaultBranch(refs),
		Refs:          len(refs),
	}, nil
}

// Head reads the current branch and commit of a local repository
func (p *Prober) Head(path string) (*domain.HeadInfo, error) {
	repo, err := p.client.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("get HEAD: %w", err)
	}

	info := &domain.HeadInfo{Commit: ref.Hash().String()}
	if ref.Name().IsBranch() {
		info.Branch = ref.Name().Short()
	}
	return info, nil
}

// DefaultBranch finds the branch HEAD points to. Servers without symref
// support only advertise the HEAD hash; the first branch at that hash wins,
// preferring main and master.
func DefaultBranch(refs []*plumbing.Reference) string {
	var head *plumbing.Reference
	for _, ref := range refs {
		if ref.Name() == plumbing.HEAD {
			head = ref
			break
		}
	}
	if head == nil {
		return ""
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short()
	}

	var match string
	for _, ref := range refs {
		if !ref.Name().IsBranch() || ref.Hash() != head.Hash() {
			continue
		}
		short := ref.Name().Short()
		if short == "main" || short == "master" {
			return short
		}
		if match == "" {
			match = short
		}
	}
	return match
}

// AuthFor returns token auth for HTTP(S) remotes. Other transports fall back
// to go-git defaults (SSH agent).
func AuthFor(url, token string) transport.AuthMethod {
	if token == "" {
		return nil
	}
	lower := strings.ToLower(url)
	if !strings.HasPrefix(lower, "https://") && !strings.HasPrefix(lower, "http://") {
		return nil
	}
	return &githttp.BasicAuth{
		Username: "token",
		Password: token,
	}
}

// classifyListError marks transient network failures as retryable.
// Network timeouts are reported as domain.ErrTimeout.
func classifyListError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	switch {
	case errors.Is(err, transport.ErrRepositoryNotFound),
		errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed),
		errors.Is(err, transport.ErrEmptyRemoteRepository),
		errors.Is(err, transport.ErrInvalidAuthMethod):
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fmt.Errorf("%w: %w", domain.ErrTimeout, err)
		}
		return &domain.RetryableError{Err: err}
	}
	return err
}
