package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/tidenav/internal/config"
)

func TestNopWithoutFile(t *testing.T) {
	logger, err := New(config.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tide.log")
	cfg := config.DefaultConfig()
	cfg.LogFile = path
	cfg.LogLevel = "info"

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("quiz begun", zap.Int("questions", 5))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "quiz begun", entry["msg"])
	assert.Equal(t, "tidenav", entry["logger"])
	assert.EqualValues(t, 5, entry["questions"])
}

func TestBadLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "tide.log")
	cfg.LogLevel = "loud"

	_, err := New(cfg)
	assert.Error(t, err)
}
