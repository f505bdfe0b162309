package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/delphix/savedump/internal/adapters/logger"
	"github.com/stretchr/testify/require"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)
	concrete.SetOutput(&buf)

	l.Info("vmlinux found")

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "vmlinux found")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)
	concrete.SetOutput(&buf)

	l.Warn("could not find debug info")

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "could not find debug info")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New()
	concrete, ok := l.(*logger.Logger)
	require.True(t, ok)
	concrete.SetOutput(&buf)

	l.Error(errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "boom")
}
