package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterFormat(t *testing.T) {
	t.Parallel()
	formatter, err := NewFormatter("%Y/%m/%d %H:%M")
	require.NoError(t, err)
	entry := &logrus.Entry{
		Time:    time.Date(2024, time.March, 5, 14, 7, 0, 0, time.UTC),
		Level:   logrus.DebugLevel,
		Message: "compiled",
		Data:    logrus.Fields{"wildcards": 2, "pattern": "*.go"},
	}
	out, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "2024/03/05 14:07 DEBUG compiled pattern=*.go wildcards=2\n", string(out))
}

func TestNewFormatterBadLayout(t *testing.T) {
	t.Parallel()
	_, err := NewFormatter("%")
	assert.Error(t, err)
}

func TestNewLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log, err := New(&buf, false, "%H")
	require.NoError(t, err)
	log.Debug("hidden")
	assert.Empty(t, buf.String())
	log.Info("shown")
	assert.Contains(t, buf.String(), "INFO shown")

	buf.Reset()
	log, err = New(&buf, true, "%H")
	require.NoError(t, err)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "DEBUG visible")
}
