package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "level1.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level1", level.Name)
	assert.Equal(t, 5, level.Grid.Width())
	assert.Equal(t, 4, level.Grid.Height())

	tileW, tileH := level.Grid.TileSize()
	assert.Equal(t, 40.0, tileW)
	assert.Equal(t, 32.0, tileH)

	// Empty cells are passable, a placed tile without the collision
	// property is solid, and the property maps the rest.
	assert.Equal(t, Passable, level.Grid.Classify(0, 0))
	assert.Equal(t, Passable, level.Grid.Classify(2, 1)) // explicit passable tile
	assert.Equal(t, Platform, level.Grid.Classify(1, 2))
	assert.Equal(t, Platform, level.Grid.Classify(2, 2))
	assert.Equal(t, Impassable, level.Grid.Classify(0, 3))
	assert.Equal(t, Impassable, level.Grid.Classify(4, 3))

	assert.Equal(t, 40.0, level.Spawn.X)
	assert.Equal(t, 32.0, level.Spawn.Y)
	require.True(t, level.HasExit)
	assert.Equal(t, 100.0, level.Exit.X)
	assert.Equal(t, 80.0, level.Exit.Y)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("."), "testdata")
	require.NoError(t, err)
	require.Equal(t, []string{"level1"}, names)
	assert.Contains(t, levels, "level1")
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	_, _, err := LoadAllLevels(os.DirFS(dir), ".")
	assert.Error(t, err)
}
