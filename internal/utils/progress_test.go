package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgressBar(t *testing.T) {
	t.Run("determinate progress bar with known total", func(t *testing.T) {
		var buf bytes.Buffer

		bar := NewProgressBar(&buf, 100, DescReceiving)

		require.NotNil(t, bar)
		assert.Equal(t, 100, bar.GetMax())
	})

	t.Run("indeterminate progress bar with unknown total", func(t *testing.T) {
		var buf bytes.Buffer

		bar := NewProgressBar(&buf, -1, DescReceiving)

		require.NotNil(t, bar)
		require.NoError(t, bar.Set64(3))
		assert.Equal(t, int64(-1), bar.State().Max, "spinner mode reports an unknown max")
		assert.Equal(t, int64(3), bar.State().CurrentNum)
	})

	t.Run("writes description to the given writer", func(t *testing.T) {
		var buf bytes.Buffer

		bar := NewProgressBar(&buf, 10, DescCheckout)
		require.NoError(t, bar.Set64(5))

		assert.Contains(t, buf.String(), DescCheckout)
	})

	t.Run("finish ends with newline", func(t *testing.T) {
		var buf bytes.Buffer

		bar := NewProgressBar(&buf, 3, DescResolving)
		require.NoError(t, bar.Finish())

		assert.Contains(t, buf.String(), "\n")
	})
}

func TestProgressBarDescriptions(t *testing.T) {
	assert.Equal(t, "Receiving objects", DescReceiving)
	assert.Equal(t, "Resolving deltas", DescResolving)
	assert.Equal(t, "Checking out files", DescCheckout)
}
