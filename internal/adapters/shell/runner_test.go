package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/delphix/savedump/internal/adapters/shell"
	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	out, err := runner.Run(context.Background(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	require.Equal(t, "hello\n", out)
}

func TestRunner_Run_MissingTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	_, err := runner.Run(context.Background(), "definitely-not-a-real-tool-xyz")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrToolMissing))
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	runner := shell.NewRunner(mockLogger)

	_, err := runner.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrToolExecutionFailed))
}

func TestRunner_Run_StderrOnSuccessIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("sh: diag").Times(1)

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Run(context.Background(), "sh", "-c", "echo diag >&2; echo ok")
	require.NoError(t, err)
	require.Equal(t, "ok\n", out)
}
