package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "salon.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking created id=%d", 7)
	log.Debug("not written at info level")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"booking created id=7"`)
	assert.NotContains(t, string(data), "not written")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestFromZap_FormatsMessages(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := FromZap(zap.New(core))

	log.Warn("staff=%d has no shift", 3)
	log.Error("failed: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "staff=3 has no shift", entries[0].Message)
	assert.Equal(t, "failed: boom", entries[1].Message)
}
