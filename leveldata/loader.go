package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/cliffside/gamemath"
)

// TMX names the loader looks for.
const (
	collisionLayerName = "collision"
	spawnGroupName     = "PlayerSpawn"
	exitGroupName      = "Exit"
)

// Level holds everything the simulation needs from a loaded level: the
// collision grid, the player spawn point and the exit location.
type Level struct {
	Name  string
	Grid  *Grid
	Spawn gamemath.Vec2

	// Exit is the center of the level exit. HasExit is false for levels
	// without one (endless/test levels).
	Exit    gamemath.Vec2
	HasExit bool
}

// Bounds returns the playable region of the level in world units.
func (l *Level) Bounds() gamemath.Rect {
	return l.Grid.Bounds()
}

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS. Collision classification comes from the
// "collision" tile layer: each placed tile's tileset "collision" property
// maps to the enum, and a placed tile without the property is Impassable.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	grid := newGridSized(levelMap.Width, levelMap.Height,
		float64(levelMap.TileWidth), float64(levelMap.TileHeight))

	var found bool
	for _, layer := range levelMap.Layers {
		if layer.Name != collisionLayerName {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				grid.Set(x, y, classifyTMXTile(tile))
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, collisionLayerName)
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid: grid,
	}

	var haveSpawn bool
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case spawnGroupName:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Spawn = gamemath.Vec2{X: o.X, Y: o.Y}
				haveSpawn = true
			}
		case exitGroupName:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Exit = gamemath.Vec2{X: o.X, Y: o.Y}
				level.HasExit = true
			}
		}
	}
	if !haveSpawn {
		return nil, fmt.Errorf("load TMX %s: no %q object group", tmxPath, spawnGroupName)
	}

	return level, nil
}

func classifyTMXTile(tile *tiled.LayerTile) TileCollision {
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return Impassable
	}
	switch tilesetTile.Properties.GetString("collision") {
	case "passable":
		return Passable
	case "platform":
		return Platform
	default:
		// A placed tile defaults to solid, matching the editor convention
		// that only special tiles carry a property.
		return Impassable
	}
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
