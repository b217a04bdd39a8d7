package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/progress"
	"github.com/quantmind-br/repoclone/internal/utils"
)

// Cloner coordinates a single clone: validation, optional remote probe,
// the progress display and the post-clone summary.
type Cloner struct {
	backend      domain.Cloner
	prober       domain.RemoteProber
	logger       *utils.Logger
	output       io.Writer
	style        string
	probe        bool
	probeTimeout time.Duration
}

// ClonerOptions contains options for creating a Cloner
type ClonerOptions struct {
	Backend domain.Cloner
	// Prober is optional; without it the probe and the HEAD summary are skipped
	Prober       domain.RemoteProber
	Logger       *utils.Logger
	Output       io.Writer
	Style        string
	Probe        bool
	ProbeTimeout time.Duration
}

// NewCloner creates a new Cloner
func NewCloner(opts ClonerOptions) (*Cloner, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("clone backend is required")
	}

	// Fail on an unknown style before anything is cloned
	if _, err := progress.NewRenderer(opts.Style, io.Discard); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}
	probeTimeout := opts.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = 15 * time.Second
	}

	return &Cloner{
		backend:      opts.Backend,
		prober:       opts.Prober,
		logger:       logger,
		output:       output,
		style:        opts.Style,
		probe:        opts.Probe,
		probeTimeout: probeTimeout,
	}, nil
}

// Prepare validates the request and fills in the default destination
func (c *Cloner) Prepare(req domain.CloneRequest) (domain.CloneRequest, error) {
	req.URL = strings.TrimSpace(req.URL)
	if err := utils.ValidateSource(req.URL); err != nil {
		return req, fmt.Errorf("%w: %w", domain.ErrInvalidSource, err)
	}

	if req.Path == "" {
		req.Path = utils.RepoNameFromURL(req.URL)
		if req.Bare {
			req.Path += ".git"
		}
	}
	req.Path = utils.ExpandPath(req.Path)

	empty, err := utils.IsEmptyOrMissing(req.Path)
	if err != nil {
		return req, fmt.Errorf("%w: %w", domain.ErrInvalidDestination, err)
	}
	if !empty {
		return req, fmt.Errorf("%w: destination path '%s' already exists and is not an empty directory",
			domain.ErrInvalidDestination, req.Path)
	}

	return req, nil
}

// Clone runs the clone and drives the progress display. Backend failures
// are reported once on the display and returned as *domain.CloneError.
func (c *Cloner) Clone(ctx context.Context, req domain.CloneRequest) (*domain.CloneResult, error) {
	req, err := c.Prepare(req)
	if err != nil {
		return nil, err
	}

	logger := c.logger.WithURL(req.URL).WithPath(req.Path)
	logger.Info().
		Str("branch", req.Branch).
		Bool("bare", req.Bare).
		Msg("Cloning repository")

	if c.probe && c.prober != nil {
		c.probeRemote(ctx, logger, req)
	}

	renderer, err := progress.NewRenderer(c.style, c.output)
	if err != nil {
		return nil, err
	}
	controller := progress.NewController(ctx, renderer)

	start := time.Now()
	if err := c.backend.Clone(ctx, req, controller); err != nil {
		cloneErr := domain.NewCloneError(req.URL, req.Path, err)
		controller.Fail(cloneErr)
		return nil, cloneErr
	}
	controller.Finish()

	result := &domain.CloneResult{
		Path:     req.Path,
		Transfer: controller.Transfer(),
		Checkout: controller.Checkout(),
		Duration: time.Since(start),
	}
	c.logSummary(logger, req, result)

	return result, nil
}

// probeRemote logs what the remote advertises. Failures never block the clone.
func (c *Cloner) probeRemote(ctx context.Context, logger *utils.Logger, req domain.CloneRequest) {
	probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	info, err := c.prober.Probe(probeCtx, req.URL, req.AuthToken)
	if err != nil {
		logger.Warn().Err(err).Msg("Remote probe failed, cloning anyway")
		return
	}

	event := logger.Debug().Int("refs", info.Refs)
	if info.DefaultBranch != "" {
		event = event.Str("default_branch", info.DefaultBranch)
	}
	event.Msg("Remote probed")

	if info.Refs == 0 {
		logger.Warn().Msg("Remote repository is empty")
	}
}

func (c *Cloner) logSummary(logger *utils.Logger, req domain.CloneRequest, result *domain.CloneResult) {
	event := logger.Info().
		Str("received", humanize.IBytes(result.Transfer.ReceivedBytes)).
		Uint64("objects", result.Transfer.TotalObjects).
		Uint64("files", result.Checkout.Total).
		Dur("duration", result.Duration)

	if c.prober != nil && !req.Bare {
		head, err := c.prober.Head(result.Path)
		if err != nil {
			logger.Debug().Err(err).Msg("Could not read HEAD")
		} else {
			result.Head = head
			event = event.Str("head", head.ShortCommit())
			if head.Branch != "" {
				event = event.Str("branch", head.Branch)
			}
		}
	}

	if abs, err := filepath.Abs(result.Path); err == nil {
		result.Path = abs
	}
	event.Msg("Clone completed")
}
