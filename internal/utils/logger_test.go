package utils

import (
	"testing"

	chlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	InitLogger()
	require.NotNil(t, Logger)

	// second call keeps the existing logger
	l := Logger
	InitLogger()
	require.Same(t, l, Logger)
}

func TestSetLogLevel(t *testing.T) {
	InitLogger()

	SetLogLevel("debug")
	require.Equal(t, chlog.DebugLevel, Logger.GetLevel())
	SetLogLevel("warn")
	require.Equal(t, chlog.WarnLevel, Logger.GetLevel())
	SetLogLevel("error")
	require.Equal(t, chlog.ErrorLevel, Logger.GetLevel())
	SetLogLevel("info")
	require.Equal(t, chlog.InfoLevel, Logger.GetLevel())

	// unknown levels leave the current level untouched
	SetLogLevel("nope")
	require.Equal(t, chlog.InfoLevel, Logger.GetLevel())
}
