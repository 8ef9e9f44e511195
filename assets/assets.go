// Package assets loads Tiled levels into plain spawn data. Rectangles are
// kept in Tiled pixels, which is also the collision space.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Object group names read from a level.
const (
	GroupOrigin      = "Origin"
	GroupSolids      = "Solids"
	GroupBouncy      = "Bouncy"
	GroupEnemies     = "Enemies"
	GroupSavePoints  = "SavePoints"
	GroupPoisonAreas = "PoisonAreas"
	GroupPlayerSpawn = "PlayerSpawn"
)

// Rect is an axis-aligned box in collision space pixels.
type Rect struct {
	X, Y, Width, Height float64
}

type EnemySpawn struct {
	Rect
	Class  string // Zombie, SuperZombie or Boss
	Health int    // 0 means the category default
}

type SavePointSpawn struct {
	Rect
	Keep bool // stays in the world after saving
}

type PoisonArea struct {
	Rect
	Destination    gamemath.Vec3
	HasDestination bool
}

type Level struct {
	Name       string
	Width      int // pixels
	Height     int
	TileWidth  int
	TileHeight int

	// Mapping converts between world units and level pixels. One tile is one
	// world unit and the Origin object marks world (0, 0).
	Mapping gamemath.SpaceMapping

	Solids      []Rect
	Bouncy      []Rect
	Enemies     []EnemySpawn
	SavePoints  []SavePointSpawn
	PoisonAreas []PoisonArea

	PlayerSpawn    gamemath.Vec3
	HasPlayerSpawn bool
}

// Center returns the world position of the centre of r.
func (l *Level) Center(r Rect) gamemath.Vec3 {
	return l.Mapping.FromSpace(r.X+r.Width/2, r.Y+r.Height/2, 0)
}

// Size returns the world width and height of r.
func (l *Level) Size(r Rect) (w, h float64) {
	return r.Width / l.Mapping.Scale, r.Height / l.Mapping.Scale
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the levels embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewLevelLoaderFS reads levels from dir in fsys.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// LevelNames lists the .tmx files of the loader's directory, sorted.
func (l *LevelLoader) LevelNames() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (l *LevelLoader) MustLoadLevel(name string) *Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a level file of the loader's directory.
func (l *LevelLoader) LoadLevel(name string) (*Level, error) {
	levelPath := path.Join(l.dir, name)
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("level %s: tile width must be positive", levelPath)
	}

	level := &Level{
		Name:       name,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		Mapping:    gamemath.SpaceMapping{Scale: float64(levelMap.TileWidth)},
	}

	// The origin has to be known before any point is converted to world space.
	for _, og := range levelMap.ObjectGroups {
		if og.Name == GroupOrigin && len(og.Objects) > 0 {
			o := og.Objects[0]
			level.Mapping.Origin = gamemath.Vec3{
				X: -o.X / level.Mapping.Scale,
				Y: o.Y / level.Mapping.Scale,
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, rectOf(o))
			}
		case GroupBouncy:
			for _, o := range og.Objects {
				level.Bouncy = append(level.Bouncy, rectOf(o))
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				class := o.Class
				if class == "" {
					class = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				level.Enemies = append(level.Enemies, EnemySpawn{
					Rect:   rectOf(o),
					Class:  class,
					Health: o.Properties.GetInt("health"),
				})
			}
		case GroupSavePoints:
			for _, o := range og.Objects {
				level.SavePoints = append(level.SavePoints, SavePointSpawn{
					Rect: rectOf(o),
					Keep: o.Properties.GetBool("keep"),
				})
			}
		case GroupPoisonAreas:
			for _, o := range og.Objects {
				area := PoisonArea{Rect: rectOf(o)}
				if o.Properties.GetString("destX") != "" || o.Properties.GetString("destY") != "" {
					area.Destination = gamemath.Vec3{
						X: o.Properties.GetFloat("destX"),
						Y: o.Properties.GetFloat("destY"),
					}
					area.HasDestination = true
				}
				level.PoisonAreas = append(level.PoisonAreas, area)
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = level.Mapping.FromSpace(o.X, o.Y, 0)
				level.HasPlayerSpawn = true
			}
		}
	}

	return level, nil
}

func rectOf(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}
