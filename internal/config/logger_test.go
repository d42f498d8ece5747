package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name       string
		cfg        LoggerConfig
		contains   []string
		suppressed bool
		level      zerolog.Level
	}{
		{
			name:     "JSON output",
			cfg:      LoggerConfig{Level: "info", Format: "json"},
			contains: []string{`"message":"menu loaded"`, `"app":"restaurant"`},
			level:    zerolog.InfoLevel,
		},
		{
			name:     "Console output",
			cfg:      LoggerConfig{Level: "debug", Format: "console"},
			contains: []string{"menu loaded", "app=restaurant"},
			level:    zerolog.DebugLevel,
		},
		{
			name:       "Level filters lower messages",
			cfg:        LoggerConfig{Level: "error", Format: "json"},
			suppressed: true,
			level:      zerolog.ErrorLevel,
		},
		{
			name:       "Unknown level falls back to warn",
			cfg:        LoggerConfig{Level: "verbose", Format: "json"},
			suppressed: true,
			level:      zerolog.WarnLevel,
		},
		{
			name:       "Empty level falls back to warn",
			cfg:        LoggerConfig{Format: "json"},
			suppressed: true,
			level:      zerolog.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.cfg, &buf)

			logger.Info().Msg("menu loaded")

			assert.Equal(t, tt.level, logger.GetLevel())
			if tt.suppressed {
				assert.Empty(t, buf.String())
			} else {
				for _, want := range tt.contains {
					assert.Contains(t, buf.String(), want)
				}
			}
		})
	}
}
