package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tprogrock "github.com/delphix/savedump/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/require"
)

func TestConsoleWriter_RendersPhases(t *testing.T) {
	var out bytes.Buffer
	rec := tprogrock.NewRecorder(tprogrock.NewConsoleWriter(&out))

	_, span := rec.Start(context.Background(), "classify dump")
	_, err := span.Write([]byte("dump type: kernel crash dump\n"))
	require.NoError(t, err)
	span.End()
	require.NoError(t, rec.Close())

	rendered := out.String()
	require.Contains(t, rendered, "=> classify dump")
	require.Contains(t, rendered, "dump type: kernel crash dump")
	require.NotContains(t, rendered, "!!")
}

func TestConsoleWriter_RendersFailure(t *testing.T) {
	var out bytes.Buffer
	rec := tprogrock.NewRecorder(tprogrock.NewConsoleWriter(&out))

	_, span := rec.Start(context.Background(), "resolve userland artifacts")
	span.RecordError(errors.New("gdb unavailable"))
	require.NoError(t, rec.Close())

	rendered := out.String()
	require.Contains(t, rendered, "=> resolve userland artifacts")
	require.Contains(t, rendered, "!! resolve userland artifacts: gdb unavailable")
}
