package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("stdout only", func(t *testing.T) {
		l, err := New("", "info")
		require.NoError(t, err)
		require.NotNil(t, l)
		assert.Nil(t, l.file)
		assert.NoError(t, l.Close())
	})

	t.Run("with file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "app.log")
		l, err := New(path, "debug")
		require.NoError(t, err)
		require.NotNil(t, l.file)
		l.Info("written to file")
		assert.NoError(t, l.Close())
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New("", "loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, logrus.InfoLevel)

	l.Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Info("booking id=%d created", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "booking id=42 created", entry["msg"])

	buf.Reset()
	l.Warn("careful")
	assert.Contains(t, buf.String(), `"level":"warning"`)

	buf.Reset()
	l.Error("broken: %v", "boom")
	assert.Contains(t, buf.String(), `"msg":"broken: boom"`)
}
