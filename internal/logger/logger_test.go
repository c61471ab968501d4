package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	lgr := NewWithWriter("warning", &buf)

	lgr.Info("dropped", nil, ChannelSystem)
	lgr.Warning("kept", nil, ChannelSystem)

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "[WARNING] [system] kept")
}

func TestFieldsAreSortedAndMerged(t *testing.T) {
	var buf bytes.Buffer
	lgr := NewWithWriter("debug", &buf).With(map[string]interface{}{"case": "correct_request"})

	lgr.Debug("response", map[string]interface{}{"status": 200, "attempt": 1}, ChannelHarness)

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "attempt=1 case=correct_request status=200"), line)
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, INFO, ParseLevel("verbose"))
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, CRITICAL, ParseLevel("critical"))
}
