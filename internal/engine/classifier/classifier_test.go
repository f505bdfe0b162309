package classifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/delphix/savedump/internal/core/domain"
	"github.com/delphix/savedump/internal/core/ports/mocks"
	"github.com/delphix/savedump/internal/engine/classifier"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassify_SystemDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := mocks.NewMockTypeProber(ctrl)
	prober.EXPECT().
		Describe(gomock.Any(), "/var/crash/dump.201234").
		Return("/var/crash/dump.201234: Kdump compressed dump v6, system Linux 5.4.0-1017-dx\n", nil)

	c := classifier.New(prober)

	kind, err := c.Classify(context.Background(), "/var/crash/dump.201234")
	require.NoError(t, err)
	require.Equal(t, domain.KindSystem, kind)
}

func TestClassify_ProcessDump(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := mocks.NewMockTypeProber(ctrl)
	prober.EXPECT().
		Describe(gomock.Any(), "/cores/core.1234").
		Return("/cores/core.1234: ELF 64-bit LSB core file, x86-64, from 'ztest', execfn: '/sbin/ztest'\n", nil)

	c := classifier.New(prober)

	kind, err := c.Classify(context.Background(), "/cores/core.1234")
	require.NoError(t, err)
	require.Equal(t, domain.KindProcess, kind)
}

func TestClassify_UnknownKindIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := mocks.NewMockTypeProber(ctrl)
	prober.EXPECT().
		Describe(gomock.Any(), "/tmp/notes.txt").
		Return("/tmp/notes.txt: ASCII text\n", nil)

	c := classifier.New(prober)

	kind, err := c.Classify(context.Background(), "/tmp/notes.txt")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrUnknownDumpKind))
	require.Equal(t, domain.KindUnknown, kind)
}

func TestClassify_ProbeFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := mocks.NewMockTypeProber(ctrl)
	prober.EXPECT().
		Describe(gomock.Any(), "/var/crash/dump.1").
		Return("", domain.ErrToolMissing)

	c := classifier.New(prober)

	_, err := c.Classify(context.Background(), "/var/crash/dump.1")
	require.True(t, errors.Is(err, domain.ErrToolMissing))
}
