package systems

import (
	"image"
	"iter"

	"github.com/automoto/starfall/components"
	"github.com/automoto/starfall/config"
	"github.com/automoto/starfall/shared/bulletpool"
	"github.com/automoto/starfall/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpriteKind says what a Drawable is.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpritePlayerBullet
	SpriteEnemyBullet
	SpriteParticle
)

// Drawable is everything a renderer needs for one sprite. Position is the
// world-space top-left corner; Frame is the source rectangle in the sprite
// sheet.
type Drawable struct {
	Kind     SpriteKind
	Enemy    config.EnemyKind // set for SpriteEnemy
	Position dmath.Vec2
	Size     dmath.Vec2
	Frame    image.Rectangle
	Alpha    float64
}

// Drawables yields the frame's sprites back to front: ships, projectiles,
// then particles. Dead entities are skipped but their particles are not.
// It only reads the world and must not be interleaved with an update.
func Drawables(w donburi.World) iter.Seq[Drawable] {
	return func(yield func(Drawable) bool) {
		var cfg *config.Config
		if entry, ok := components.Game.First(w); ok {
			cfg = components.Game.Get(entry).Config
		}
		if cfg == nil {
			return
		}

		for entry := range tags.Player.Iter(w) {
			if components.Lifecycle.Get(entry).Dead() {
				continue
			}
			if !yield(playerDrawable(cfg, entry)) {
				return
			}
		}

		for entry := range tags.Enemy.Iter(w) {
			if components.Lifecycle.Get(entry).Dead() {
				continue
			}
			if !yield(enemyDrawable(entry)) {
				return
			}
		}

		if !yieldPool(PlayerBullets(w), SpritePlayerBullet, yield) {
			return
		}
		if !yieldPool(EnemyBullets(w), SpriteEnemyBullet, yield) {
			return
		}

		size := dmath.Vec2{X: cfg.Particles.Size, Y: cfg.Particles.Size}
		for entry := range components.Lifecycle.Iter(w) {
			emitter := components.Lifecycle.Get(entry).Emitter
			life := float32(emitter.LifeMs())
			for p := range emitter.All() {
				d := Drawable{
					Kind:     SpriteParticle,
					Position: p.Position,
					Size:     size,
					Alpha:    1 - float64(ease.OutQuad(float32(p.Age), 0, 1, life)),
				}
				if !yield(d) {
					return
				}
			}
		}
	}
}

func playerDrawable(cfg *config.Config, entry *donburi.Entry) Drawable {
	pc := cfg.Player
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	// Sheet columns: 0-1 level, 2-3 banking left, 4-5 banking right.
	offset := 0
	switch player.Steering {
	case -1:
		offset = 2
	case 1:
		offset = 4
	}
	x := pc.FrameWidth * (offset + player.Animation.Frame())

	return Drawable{
		Kind:     SpritePlayer,
		Position: obj.Position(),
		Size:     dmath.Vec2{X: float64(pc.FrameWidth), Y: float64(pc.FrameHeight)},
		Frame:    image.Rect(x, 0, x+pc.FrameWidth, pc.FrameHeight),
		Alpha:    1,
	}
}

func enemyDrawable(entry *donburi.Entry) Drawable {
	enemy := components.Enemy.Get(entry)
	obj := components.Object.Get(entry)
	p := enemy.Profile

	x := p.FrameWidth * enemy.Frame()
	return Drawable{
		Kind:     SpriteEnemy,
		Enemy:    enemy.Kind,
		Position: obj.Position(),
		Size:     dmath.Vec2{X: float64(p.FrameWidth), Y: float64(p.FrameHeight)},
		Frame:    image.Rect(x, p.SpriteRow, x+p.FrameWidth, p.SpriteRow+p.FrameHeight),
		Alpha:    1,
	}
}

func yieldPool(pool *bulletpool.Pool, kind SpriteKind, yield func(Drawable) bool) bool {
	if pool == nil {
		return true
	}
	for pos, frame := range pool.All() {
		d := Drawable{
			Kind:     kind,
			Position: pos,
			Size:     dmath.Vec2{X: float64(frame.Dx()), Y: float64(frame.Dy())},
			Frame:    frame,
			Alpha:    1,
		}
		if !yield(d) {
			return false
		}
	}
	return true
}
