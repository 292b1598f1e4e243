// Package particles implements the bounded burst emitter that animates an
// entity's death.
package particles

import (
	"iter"

	dmath "github.com/yohamta/donburi/features/math"
)

// Particle is a single short-lived visual.
type Particle struct {
	Position dmath.Vec2
	Age      float64 // milliseconds since emission
}

// Emitter owns a fixed buffer of particles and a lifetime emission budget.
// Once Budget particles have been emitted, Emit refuses further emissions
// even after older particles expire.
type Emitter struct {
	buf     []Particle
	live    int
	emitted int
	lifeMs  float64
	rise    float64
}

// NewEmitter allocates an emitter with room for budget particles, each living
// lifeMs milliseconds and drifting upward rise pixels per reference frame.
func NewEmitter(budget int, lifeMs, rise float64) *Emitter {
	if budget < 0 {
		budget = 0
	}
	return &Emitter{
		buf:    make([]Particle, budget),
		lifeMs: lifeMs,
		rise:   rise,
	}
}

// Emit adds a particle at pos. It reports false when the budget is spent.
func (e *Emitter) Emit(pos dmath.Vec2) bool {
	if e.Exhausted() || e.live >= len(e.buf) {
		return false
	}
	e.buf[e.live] = Particle{Position: pos}
	e.live++
	e.emitted++
	return true
}

// Update ages every particle and drops the expired ones.
func (e *Emitter) Update(elapsedMs, step float64) {
	for i := 0; i < e.live; {
		p := &e.buf[i]
		p.Age += elapsedMs
		p.Position.Y -= e.rise * step
		if p.Age >= e.lifeMs {
			e.live--
			e.buf[i] = e.buf[e.live]
			continue
		}
		i++
	}
}

// Emitted returns how many particles have been emitted so far.
func (e *Emitter) Emitted() int { return e.emitted }

// Budget returns the lifetime emission budget.
func (e *Emitter) Budget() int { return len(e.buf) }

// Exhausted reports whether the budget is spent.
func (e *Emitter) Exhausted() bool { return e.emitted >= len(e.buf) }

// Len returns the number of particles still animating.
func (e *Emitter) Len() int { return e.live }

// Active reports whether any particle is still animating.
func (e *Emitter) Active() bool { return e.live > 0 }

// LifeMs returns the lifetime of a single particle.
func (e *Emitter) LifeMs() float64 { return e.lifeMs }

// All yields the live particles.
func (e *Emitter) All() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for i := 0; i < e.live; i++ {
			if !yield(e.buf[i]) {
				return
			}
		}
	}
}
