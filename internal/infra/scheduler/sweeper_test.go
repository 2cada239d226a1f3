//go:build unit

package scheduler

import (
	"errors"
	"testing"

	commandsmock "tokengate/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewSweeper_RejectsBadSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewSweeper("every minute please", commandsmock.NewMockVerificationCommands(ctrl))
	assert.Error(t, err)
}

func TestSweeper_Run(t *testing.T) {
	t.Run("expires stale sessions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockVerificationCommands(ctrl)
		cmds.EXPECT().ExpireStale(gomock.Any()).Return(int64(3), nil).Times(1)

		s, err := NewSweeper("@every 1m", cmds)
		require.NoError(t, err)
		s.run()
	})

	t.Run("store errors are logged, not raised", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cmds := commandsmock.NewMockVerificationCommands(ctrl)
		cmds.EXPECT().ExpireStale(gomock.Any()).Return(int64(0), errors.New("pool closed")).Times(1)

		s, err := NewSweeper("@every 1m", cmds)
		require.NoError(t, err)
		assert.NotPanics(t, s.run)
	})
}
