package config

import (
	"image"
)

// WorldConfig contains the arena and frame-timing configuration
type WorldConfig struct {
	// Viewport
	Width  int
	Height int

	// Scroll extent of the arena in world pixels
	WorldHeight float64

	// Reference frame length in milliseconds. Velocities are expressed in
	// pixels per reference frame and scaled by elapsed/FrameMillis.
	FrameMillis float64
	// Upper bound on a single frame's elapsed time (stalls, breakpoints)
	MaxFrameMillis float64

	// Vertical drift applied to every enemy, pixels per reference frame
	ScrollSpeed float64

	// Pool capacities
	PlayerBulletCapacity int
	EnemyBulletCapacity  int

	// Procedural spawn distribution (used when no level file is given)
	EnemyCount      int
	SpawnTop        float64 // highest spawn y
	SpawnClearance  float64 // gap kept between the lowest spawn and the player start
	SpawnCellSize   int     // resolv space cell size
	SpawnMaxRetries int

	// Seed for the simulation's random source
	Seed uint64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per reference frame)
	SpeedX float64
	SpeedY float64

	// Combat
	Health      int
	FireDelayMs float64

	// Projectile
	BulletSpeed   float64
	BulletOffsetY float64
	BulletFrame   image.Rectangle
	BulletRadius  float64

	// Animation
	FrameDelayMs float64

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
}

// MovementRule selects how an enemy moves horizontally
type MovementRule int

const (
	MoveStationary MovementRule = iota
	MovePatrol
	movementRuleCount
)

// FireRule selects how an enemy aims its shots
type FireRule int

const (
	FireAimed FireRule = iota
	FireDown
	fireRuleCount
)

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Kind   EnemyKind
	Health int

	Movement    MovementRule
	PatrolSpeed float64 // pixels per reference frame
	PatrolRange float64 // default half-width of the patrol span

	Fire           FireRule
	AttackDelayMs  float64
	WindupDelayMs  float64 // per wind-up frame; 0 disables wind-up
	WindupFrames   int
	BulletSpeed    float64
	BulletOffset   image.Point
	BulletFrame    image.Rectangle
	BulletRadius   float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	FrameWidth      int
	FrameHeight     int
	SpriteRow       int // y of the first frame in the sprite sheet
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig
}

// ParticleConfig contains death burst configuration
type ParticleConfig struct {
	Budget   int     // emissions per death, also the emitter capacity
	LifeMs   float64 // lifetime of a single particle
	Size     float64
	RiseRate float64 // upward drift, pixels per reference frame
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	Anchor          float64 // Player's resting position as a fraction of the viewport height
}

// AutopilotConfig holds tuning for the built-in input generator
type AutopilotConfig struct {
	DodgeDistance  float64 // enemy projectiles closer than this are avoided
	AlignTolerance float64 // horizontal slack when lining up under a target
	HoldDistance   float64 // preferred vertical gap below the targeted enemy
}

// Config holds the full construction-time configuration of one simulation
type Config struct {
	World     WorldConfig
	Player    PlayerConfig
	Enemy     EnemyConfig
	Particles ParticleConfig
	Camera    CameraConfig
	Autopilot AutopilotConfig
	Audio     AudioConfig
}

// EnemyType returns the profile for kind.
func (c *Config) EnemyType(kind EnemyKind) (EnemyTypeConfig, error) {
	t, ok := c.Enemy.Types[kind]
	if !ok {
		return EnemyTypeConfig{}, unknownKind(kind.String())
	}
	return t, nil
}

// Step converts elapsed milliseconds into reference frames.
func (w WorldConfig) Step(elapsedMs float64) float64 {
	if w.FrameMillis <= 0 {
		return 0
	}
	return elapsedMs / w.FrameMillis
}

// Default returns the stock configuration. Every call returns a fresh copy.
func Default() *Config {
	c := &Config{}

	c.World = WorldConfig{
		Width:       1024,
		Height:      786,
		WorldHeight: 4096,

		FrameMillis:    1000.0 / 60.0,
		MaxFrameMillis: 100,

		ScrollSpeed: 1,

		PlayerBulletCapacity: 50,
		EnemyBulletCapacity:  100,

		EnemyCount:      20,
		SpawnTop:        160,
		SpawnClearance:  900,
		SpawnCellSize:   32,
		SpawnMaxRetries: 16,

		Seed: 1,
	}

	c.Player = PlayerConfig{
		SpeedX: 5,
		SpeedY: 2.5,

		Health:      5,
		FireDelayMs: 200,

		BulletSpeed:   10,
		BulletOffsetY: 16,
		BulletFrame:   image.Rect(0, 32, 8, 48),
		BulletRadius:  4,

		FrameDelayMs: 50,

		FrameWidth:      32,
		FrameHeight:     32,
		CollisionWidth:  32,
		CollisionHeight: 32,
	}

	c.Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			Sphere: {
				Kind:   Sphere,
				Health: 5,

				Movement: MoveStationary,

				Fire:          FireAimed,
				AttackDelayMs: 500,
				WindupDelayMs: 50,
				WindupFrames:  4,
				BulletSpeed:   10,
				BulletOffset:  image.Pt(32, 40),
				BulletFrame:   image.Rect(0, 512, 64, 576),
				BulletRadius:  8,

				CollisionWidth:  100,
				CollisionHeight: 100,
				FrameWidth:      128,
				FrameHeight:     128,
				SpriteRow:       384,
			},
			Triangle: {
				Kind:   Triangle,
				Health: 3,

				Movement:    MovePatrol,
				PatrolSpeed: 2,
				PatrolRange: 160,

				Fire:          FireDown,
				AttackDelayMs: 900,
				BulletSpeed:   7,
				BulletOffset:  image.Pt(28, 64),
				BulletFrame:   image.Rect(64, 512, 80, 528),
				BulletRadius:  6,

				CollisionWidth:  64,
				CollisionHeight: 64,
				FrameWidth:      64,
				FrameHeight:     64,
				SpriteRow:       256,
			},
		},
	}

	c.Particles = ParticleConfig{
		Budget:   20,
		LifeMs:   600,
		Size:     6,
		RiseRate: 0.5,
	}

	c.Camera = CameraConfig{
		FollowSmoothing: 0.2,
		Anchor:          0.75,
	}

	c.Autopilot = AutopilotConfig{
		DodgeDistance:  140,
		AlignTolerance: 12,
		HoldDistance:   320,
	}

	c.Audio = defaultAudio()

	return c
}
