package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_AllLogLevels(t *testing.T) {
	testCases := []struct {
		level         string
		expectedLevel zerolog.Level
		name          string
	}{
		{"debug", zerolog.DebugLevel, "debug"},
		{"info", zerolog.InfoLevel, "info"},
		{"warn", zerolog.WarnLevel, "warn"},
		{"error", zerolog.ErrorLevel, "error"},
		{"unknown", zerolog.InfoLevel, "unknown defaults to info"},
	}
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			New(Config{Level: tc.level, Out: &bytes.Buffer{}})
			assert.Equal(t, tc.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNew_Output(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	l := New(Config{Level: "info", Out: &buf})
	l.Info().Str("tier", "Low").Msg("suggested")
	l.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), `"message":"suggested"`)
	assert.Contains(t, buf.String(), `"tier":"Low"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_PrettyOutput(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	l := New(Config{Level: "debug", Pretty: true, Out: &buf})
	l.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestSetGlobalLogger(t *testing.T) {
	defer func(l zerolog.Logger) { log.Logger = l }(log.Logger)
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: "info", Out: &buf}))
	log.Info().Msg("global")

	assert.Contains(t, buf.String(), "global")
}
