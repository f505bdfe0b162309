package progrock_test

import (
	"context"
	"errors"
	"testing"

	tprogrock "github.com/delphix/savedump/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
)

func TestRecorder_SpanLifecycle(t *testing.T) {
	tape := progrock.NewTape()
	rec := tprogrock.NewRecorder(tape)

	ctx := context.Background()
	_, span := rec.Start(ctx, "classify dump")

	n, err := span.Write([]byte("dump type: userland core dump\n"))
	require.NoError(t, err)
	require.Equal(t, 30, n)

	span.End()
	require.NoError(t, rec.Close())
}

func TestRecorder_SpanError(t *testing.T) {
	tape := progrock.NewTape()
	rec := tprogrock.NewRecorder(tape)

	_, span := rec.Start(context.Background(), "resolve closure")
	span.RecordError(errors.New("gdb unavailable"))
	require.NoError(t, rec.Close())
}
