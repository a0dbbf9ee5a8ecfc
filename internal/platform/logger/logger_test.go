package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestParseFormat(t *testing.T) {
	require.Equal(t, FormatJSON, ParseFormat("json"))
	require.Equal(t, FormatJSON, ParseFormat(" JSON "))
	require.Equal(t, FormatText, ParseFormat(""))
	require.Equal(t, FormatText, ParseFormat("console"))
}

func TestNew_NotNil(t *testing.T) {
	l := New(Options{Level: zapcore.InfoLevel, Format: FormatJSON, App: "petpal-lite"})
	require.NotNil(t, l)

	l.Info("logger smoke test")
	_ = l.Sync()
}
