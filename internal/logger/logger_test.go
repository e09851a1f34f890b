package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
		wantWarn  bool
	}{
		{name: "debug", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "warn", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", wantLevel: zerolog.InfoLevel},
		{name: "invalid defaults to info", level: "loud", wantLevel: zerolog.InfoLevel, wantWarn: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Setup(&buf, tc.level)

			assert.Equal(t, tc.wantLevel, zerolog.GlobalLevel())
			if tc.wantWarn {
				assert.Contains(t, buf.String(), "Invalid log level")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestSlackAdapter_Output(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	Setup(&buf, "debug")

	adapter := NewSlackAdapter()
	assert.NoError(t, adapter.Output(2, "conversations.history called"))
	assert.Contains(t, buf.String(), "conversations.history called")
	assert.Contains(t, buf.String(), "slack-api")

	buf.Reset()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	assert.NoError(t, adapter.Output(2, "hidden at info"))
	assert.Empty(t, buf.String())
}
