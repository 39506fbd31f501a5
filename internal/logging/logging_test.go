package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankigreek/ankigreek/internal/config"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, closer, err := New(config.LogConfig{Level: "loud", Format: "json"})
	require.Error(t, err)
	assert.NotNil(t, closer)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ankigreek.log")
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "json", Path: path})
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("word", "ὁ νοῦς").Msg("fetched")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"word":"ὁ νοῦς"`)
	assert.Contains(t, string(data), `"message":"fetched"`)
	assert.NotContains(t, string(data), "hidden")
}
