package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/golessons/internal/logger"
)

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New("warn", "console", &buf)
	require.NoError(t, err)

	log.Debug("hidden debug")
	log.Info("hidden info")
	log.Warn("visible warn", "k", 1)
	log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warn")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New("DEBUG", "json", &buf)
	require.NoError(t, err)

	log.With("lesson", "3").Error("boom", "attempt", 2)
	log.Sync()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "boom", rec["msg"])
	assert.Equal(t, "error", rec["level"])
	assert.Equal(t, "3", rec["lesson"])
	assert.EqualValues(t, 2, rec["attempt"])
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, err := logger.New("loud", "console", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logger.New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNopDiscards(t *testing.T) {
	log := logger.Nop()
	log.Error("nothing to see")
	log.Sync()
}
