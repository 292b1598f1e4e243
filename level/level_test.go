package level

import (
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"github.com/automoto/starfall/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="8" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="EnemySpawn">
  <object id="1" x="10" y="20" width="100" height="100">
   <properties>
    <property name="enemyType" value="sphere"/>
   </properties>
  </object>
  <object id="2" class="triangle" x="40" y="60" width="64" height="64">
   <properties>
    <property name="patrolLeft" type="float" value="0"/>
    <property name="patrolRight" type="float" value="64"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="48" y="200" width="32" height="32"/>
 </objectgroup>
</map>
`

func mapFS(name, body string) fstest.MapFS {
	return fstest.MapFS{name: &fstest.MapFile{Data: []byte(body)}}
}

func TestLoad(t *testing.T) {
	lvl, err := Load(mapFS("maps/test.tmx", testMap), "maps/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", lvl.Name)
	assert.Equal(t, 128.0, lvl.Width)
	assert.Equal(t, 256.0, lvl.Height)
	assert.Equal(t, 48.0, lvl.PlayerSpawn.X)
	assert.Equal(t, 200.0, lvl.PlayerSpawn.Y)

	require.Len(t, lvl.Enemies, 2)
	assert.Equal(t, config.Sphere, lvl.Enemies[0].Kind)
	assert.False(t, lvl.Enemies[0].HasPatrol())

	// class attribute is the fallback tag
	assert.Equal(t, config.Triangle, lvl.Enemies[1].Kind)
	assert.True(t, lvl.Enemies[1].HasPatrol())
	assert.Equal(t, 64.0, lvl.Enemies[1].PatrolRight)
}

func TestLoadUnknownKind(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="EnemySpawn">
  <object id="1" x="0" y="0">
   <properties>
    <property name="enemyType" value="hexagon"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="0" y="0"/>
 </objectgroup>
</map>
`
	_, err := Load(mapFS("bad.tmx", body), "bad.tmx")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownEnemyKind)
}

func TestLoadNoPlayerSpawn(t *testing.T) {
	body := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="EnemySpawn"/>
</map>
`
	_, err := Load(mapFS("empty.tmx", body), "empty.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad(fstest.MapFS{}, "nope.tmx") })
}

func TestGenerate(t *testing.T) {
	cfg := config.Default()
	lvl := Generate(cfg, rand.New(rand.NewPCG(cfg.World.Seed, cfg.World.Seed)))

	require.Len(t, lvl.Enemies, cfg.World.EnemyCount)
	assert.Equal(t, cfg.World.WorldHeight, lvl.Height)

	for _, s := range lvl.Enemies {
		p, err := cfg.EnemyType(s.Kind)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.LessOrEqual(t, s.X+p.CollisionWidth, float64(cfg.World.Width))
		assert.GreaterOrEqual(t, s.Y, cfg.World.SpawnTop)
		assert.Less(t, s.Y, lvl.PlayerSpawn.Y-cfg.World.SpawnClearance+cfg.Player.CollisionHeight*4)
		if p.Movement == config.MovePatrol {
			assert.True(t, s.HasPatrol())
			assert.LessOrEqual(t, s.PatrolLeft, s.X)
			assert.GreaterOrEqual(t, s.PatrolRight, s.X)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := config.Default()
	a := Generate(cfg, rand.New(rand.NewPCG(9, 9)))
	b := Generate(cfg, rand.New(rand.NewPCG(9, 9)))
	assert.Equal(t, a.Enemies, b.Enemies)
}

func TestGenerateKeepsSpawnsApart(t *testing.T) {
	cfg := config.Default()
	cfg.World.EnemyCount = 6
	lvl := Generate(cfg, rand.New(rand.NewPCG(3, 3)))

	// Replaying the placements into a fresh space must find no shared cells
	// given the default retry budget over a mostly empty world.
	space := resolv.NewSpace(cfg.World.Width, int(cfg.World.WorldHeight), cfg.World.SpawnCellSize, cfg.World.SpawnCellSize)
	for _, s := range lvl.Enemies {
		p, _ := cfg.EnemyType(s.Kind)
		obj := resolv.NewObject(s.X, s.Y, p.CollisionWidth, p.CollisionHeight, "Enemy")
		space.Add(obj)
		assert.Nil(t, obj.Check(0, 0, "Enemy"))
	}
}
