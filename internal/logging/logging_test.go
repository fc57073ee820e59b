package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Warn().Str("key", "runData").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=runData")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestNewDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "disabled")
	require.NoError(t, err)

	logger.Error().Msg("nothing")
	assert.Empty(t, buf.String())
}
