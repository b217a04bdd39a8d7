package git_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/git"
)

func fastRetrier(maxRetries int) *git.Retrier {
	return git.NewRetrier(git.RetrierOptions{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	})
}

func TestNewRetrier(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		opts := git.DefaultRetrierOptions()
		assert.Equal(t, 2, opts.MaxRetries)
		assert.Equal(t, 500*time.Millisecond, opts.InitialInterval)
		assert.NotNil(t, git.NewRetrier(opts))
	})

	t.Run("invalid options fall back to defaults", func(t *testing.T) {
		r := git.NewRetrier(git.RetrierOptions{MaxRetries: -1})
		assert.NotNil(t, r)
	})
}

func TestRetryWithValue(t *testing.T) {
	ctx := context.Background()

	t.Run("success on first attempt", func(t *testing.T) {
		calls := 0
		got, err := git.RetryWithValue(ctx, fastRetrier(3), func() (string, error) {
			calls++
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("retryable error is retried until success", func(t *testing.T) {
		calls := 0
		got, err := git.RetryWithValue(ctx, fastRetrier(3), func() (int, error) {
			calls++
			if calls < 3 {
				return 0, &domain.RetryableError{Err: errors.New("connection reset")}
			}
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 3, calls)
	})

	t.Run("retries are bounded", func(t *testing.T) {
		calls := 0
		_, err := git.RetryWithValue(ctx, fastRetrier(2), func() (int, error) {
			calls++
			return 0, &domain.RetryableError{Err: errors.New("timeout")}
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("permanent error is not retried", func(t *testing.T) {
		permanent := errors.New("repository not found")
		calls := 0
		_, err := git.RetryWithValue(ctx, fastRetrier(3), func() (int, error) {
			calls++
			return 0, permanent
		})

		require.Error(t, err)
		assert.Same(t, permanent, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero retries runs once", func(t *testing.T) {
		calls := 0
		_, err := git.RetryWithValue(ctx, fastRetrier(0), func() (int, error) {
			calls++
			return 0, &domain.RetryableError{Err: errors.New("timeout")}
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		calls := 0
		_, err := git.RetryWithValue(cctx, fastRetrier(5), func() (int, error) {
			calls++
			return 0, &domain.RetryableError{Err: errors.New("timeout")}
		})

		require.Error(t, err)
		assert.LessOrEqual(t, calls, 1)
	})
}
