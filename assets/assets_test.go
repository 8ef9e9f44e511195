package assets

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/slambounce/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelNames(t *testing.T) {
	names, err := NewLevelLoader().LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "prototype.tmx")
}

func TestLoadLevel_Prototype(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel("prototype.tmx")
	require.NoError(t, err)

	assert.Equal(t, 1024, level.Width)
	assert.Equal(t, 512, level.Height)
	assert.Equal(t, 16.0, level.Mapping.Scale)
	assert.Equal(t, gamemath.Vec3{X: -32, Y: 24}, level.Mapping.Origin)

	assert.Len(t, level.Solids, 3)
	require.Len(t, level.Bouncy, 1)
	assert.Equal(t, Rect{X: 400, Y: 392, Width: 64, Height: 16}, level.Bouncy[0])

	require.Len(t, level.Enemies, 3)
	assert.Equal(t, "Zombie", level.Enemies[0].Class)
	assert.Equal(t, "SuperZombie", level.Enemies[1].Class)
	assert.Equal(t, "Boss", level.Enemies[2].Class)
	assert.Equal(t, 0, level.Enemies[0].Health)
	assert.Equal(t, 4, level.Enemies[2].Health)

	require.Len(t, level.SavePoints, 1)
	assert.False(t, level.SavePoints[0].Keep)

	require.Len(t, level.PoisonAreas, 1)
	assert.True(t, level.PoisonAreas[0].HasDestination)
	assert.Equal(t, gamemath.Vec3{X: 0, Y: 5}, level.PoisonAreas[0].Destination)

	require.True(t, level.HasPlayerSpawn)
	assert.Equal(t, gamemath.Vec3{X: -22, Y: 4}, level.PlayerSpawn)
}

func TestLevel_CenterAndSize(t *testing.T) {
	level := &Level{Mapping: gamemath.SpaceMapping{Origin: gamemath.Vec3{X: -32, Y: 24}, Scale: 16}}
	r := Rect{X: 512, Y: 368, Width: 32, Height: 32}

	assert.Equal(t, gamemath.Vec3{X: 1, Y: 0}, level.Center(r))
	w, h := level.Size(r)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, 2.0, h)
}

func TestLoadLevel_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/broken.tmx": {Data: []byte("not a map")},
	}
	loader := NewLevelLoaderFS(fsys, "maps")

	_, err := loader.LoadLevel("missing.tmx")
	assert.Error(t, err)

	_, err = loader.LoadLevel("broken.tmx")
	assert.Error(t, err)

	assert.Panics(t, func() { loader.MustLoadLevel("missing.tmx") })
}
