package cloner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	git2go "github.com/libgit2/git2go/v34"

	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/utils"
)

// maxCredentialAttempts bounds libgit2's credential loop, which otherwise
// asks again after every rejected credential.
const maxCredentialAttempts = 3

// Ensure Libgit2Cloner implements domain.Cloner
var _ domain.Cloner = (*Libgit2Cloner)(nil)

// Libgit2Cloner clones repositories through libgit2 and forwards its
// transfer and checkout progress to domain.ProgressCallbacks.
type Libgit2Cloner struct {
	logger *utils.Logger
}

// Options contains options for creating a Libgit2Cloner
type Options struct {
	Logger *utils.Logger
}

// New creates a new Libgit2Cloner
func New(opts Options) *Libgit2Cloner {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{Level: "disabled"})
	}
	return &Libgit2Cloner{logger: logger.WithComponent("libgit2")}
}

// Clone fetches req.URL into req.Path. Callbacks run on the calling
// goroutine, one at a time. The clone aborts as soon as OnTransfer
// returns false.
func (c *Libgit2Cloner) Clone(ctx context.Context, req domain.CloneRequest, cb domain.ProgressCallbacks) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAborted, err)
	}

	aborted := false
	opts := c.cloneOptions(req, cb, func() error {
		aborted = true
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrAborted, err)
		}
		return domain.ErrAborted
	})

	repo, err := git2go.Clone(req.URL, req.Path, opts)
	if err != nil {
		if aborted && !errors.Is(err, domain.ErrAborted) {
			return fmt.Errorf("%w: %w", domain.ErrAborted, err)
		}
		return err
	}
	repo.Free()

	return nil
}

func (c *Libgit2Cloner) cloneOptions(req domain.CloneRequest, cb domain.ProgressCallbacks, abort func() error) *git2go.CloneOptions {
	callbacks := git2go.RemoteCallbacks{
		TransferProgressCallback: func(stats git2go.TransferProgress) error {
			if !cb.OnTransfer(transferSnapshot(stats)) {
				return abort()
			}
			return nil
		},
		SidebandProgressCallback: func(msg string) error {
			if line := strings.TrimSpace(strings.ReplaceAll(msg, "\r", "\n")); line != "" {
				c.logger.Debug().Str("remote", line).Msg("Remote message")
			}
			return nil
		},
		CredentialsCallback: credentialsCallback(req.AuthToken),
	}
	if req.IgnoreCertErrors {
		callbacks.CertificateCheckCallback = func(_ *git2go.Certificate, valid bool, hostname string) error {
			if !valid {
				c.logger.Warn().Str("host", hostname).Msg("Accepting untrusted certificate")
			}
			return nil
		}
	}

	return &git2go.CloneOptions{
		CheckoutOptions: git2go.CheckoutOptions{
			Strategy: git2go.CheckoutSafe,
			ProgressCallback: func(path string, completed, total uint) {
				cb.OnCheckout(path, uint64(completed), uint64(total))
			},
		},
		FetchOptions: git2go.FetchOptions{
			RemoteCallbacks: callbacks,
		},
		Bare:           req.Bare,
		CheckoutBranch: req.Branch,
	}
}

// transferSnapshot converts libgit2 transfer statistics
func transferSnapshot(stats git2go.TransferProgress) domain.TransferSnapshot {
	return domain.TransferSnapshot{
		ReceivedBytes:   uint64(stats.ReceivedBytes),
		ReceivedObjects: uint64(stats.ReceivedObjects),
		TotalObjects:    uint64(stats.TotalObjects),
		IndexedObjects:  uint64(stats.IndexedObjects),
		IndexedDeltas:   uint64(stats.IndexedDeltas),
		TotalDeltas:     uint64(stats.TotalDeltas),
	}
}

// credentialsCallback offers a token for HTTPS, the SSH agent for SSH and
// the platform default otherwise.
func credentialsCallback(token string) git2go.CredentialsCallback {
	attempts := 0
	return func(url, username string, allowed git2go.CredentialType) (*git2go.Credential, error) {
		attempts++
		if attempts > maxCredentialAttempts {
			return nil, fmt.Errorf("authentication failed for %s", url)
		}

		switch {
		case allowed&git2go.CredentialTypeUserpassPlaintext != 0 && token != "":
			return git2go.NewCredentialUserpassPlaintext("token", token)
		case allowed&git2go.CredentialTypeSSHKey != 0:
			if username == "" {
				username = "git"
			}
			return git2go.NewCredentialSSHKeyFromAgent(username)
		case allowed&git2go.CredentialTypeDefault != 0:
			return git2go.NewCredentialDefault()
		}
		return nil, fmt.Errorf("no credentials available for %s", url)
	}
}
