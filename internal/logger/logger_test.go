// SPDX-License-Identifier: MIT

package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, tc := range []struct {
		name    string
		format  string
		level   string
		enabled zapcore.Level
		wantErr bool
	}{
		{name: "text_debug", format: FormatText, level: "debug", enabled: zapcore.DebugLevel},
		{name: "json_info", format: FormatJSON, level: "info", enabled: zapcore.InfoLevel},
		{name: "text_warn", format: FormatText, level: "warn", enabled: zapcore.WarnLevel},
		{name: "json_error", format: FormatJSON, level: "error", enabled: zapcore.ErrorLevel},
		{name: "bad_level", format: FormatText, level: "loud", wantErr: true},
		{name: "bad_format", format: "xml", level: "info", wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log, err := NewLogger(tc.format, tc.level)
			if tc.wantErr {
				require.Error(t, err)
				require.Nil(t, log)

				return
			}
			require.NoError(t, err)
			require.True(t, log.Core().Enabled(tc.enabled))
			if tc.enabled > zapcore.DebugLevel {
				require.False(t, log.Core().Enabled(tc.enabled-1))
			}
		})
	}
}

func TestNoneLevelIsNoop(t *testing.T) {
	log, err := NewLogger(FormatJSON, "none")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestMustNewLogger(t *testing.T) {
	require.Panics(t, func() { MustNewLogger(FormatText, "verbose") })
	require.NotPanics(t, func() { MustNewLogger(FormatText, "info") })
}
