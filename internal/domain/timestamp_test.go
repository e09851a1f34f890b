package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlackTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		ts       string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "マイクロ秒付き",
			ts:       "1700000000.000123",
			expected: time.Unix(1700000000, 123000),
		},
		{
			name:     "秒のみ",
			ts:       "1700000000",
			expected: time.Unix(1700000000, 0),
		},
		{
			name:     "小数部が短い",
			ts:       "1700000000.5",
			expected: time.Unix(1700000000, 500000000),
		},
		{
			name:    "数値でない",
			ts:      "abc.123",
			wantErr: true,
		},
		{
			name:    "空文字列",
			ts:      "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlackTimestamp(tt.ts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v, want %v", got, tt.expected)
		})
	}
}

func TestFormatSlackTimestamp(t *testing.T) {
	ts := FormatSlackTimestamp(time.Unix(1700000000, 123456789))
	assert.Equal(t, "1700000000.123456", ts)

	parsed, err := ParseSlackTimestamp(ts)
	require.NoError(t, err)
	assert.Equal(t, ts, FormatSlackTimestamp(parsed))
}
