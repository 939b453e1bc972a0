package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, Level(false, false))
	assert.Equal(t, zapcore.DebugLevel, Level(true, false))
	assert.Equal(t, zapcore.ErrorLevel, Level(false, true))
	assert.Equal(t, zapcore.DebugLevel, Level(true, true))
}

func TestNew(t *testing.T) {
	logger, err := New(false, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	verbose, err := New(true, false)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))
}
