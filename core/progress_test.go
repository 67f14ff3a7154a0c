package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTempDataDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
}

func TestProgressRecordsBestTimes(t *testing.T) {
	setTempDataDir(t)

	p, err := OpenProgress("cliffside-test")
	require.NoError(t, err)
	assert.Empty(t, p.Levels)

	improved, err := p.RecordCompletion("demo", 12.5)
	require.NoError(t, err)
	assert.True(t, improved, "first completion is always a record")

	improved, err = p.RecordCompletion("demo", 20)
	require.NoError(t, err)
	assert.False(t, improved, "slower run does not beat the record")

	improved, err = p.RecordCompletion("demo", 8)
	require.NoError(t, err)
	assert.True(t, improved)

	// A fresh handle sees what was saved.
	reopened, err := OpenProgress("cliffside-test")
	require.NoError(t, err)
	assert.Equal(t, LevelProgress{Completed: true, BestTime: 8}, reopened.Levels["demo"])
}
