package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("DEBUG"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	require.NoError(t, SetLevel(" error "))
	assert.Equal(t, zapcore.ErrorLevel, Level())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zapcore.InfoLevel, Level())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.InfoLevel, Level())
	assert.NotNil(t, L)
}
