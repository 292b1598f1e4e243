// Package bulletpool stores projectiles as a fixed-capacity structure of
// arrays. Live records always occupy the prefix [0, Len()); removal swaps the
// last live record into the freed slot, so record order is unspecified and
// indices are only stable until the next removal.
package bulletpool

import (
	"fmt"
	"image"
	"iter"

	dmath "github.com/yohamta/donburi/features/math"
)

// Pool is a fixed-capacity projectile buffer. The zero value is unusable;
// use New.
type Pool struct {
	x, y   []float64
	vx, vy []float64
	radius []float64
	frame  []image.Rectangle
	marked []bool

	end     int
	max     int
	pending int
}

// New allocates a pool holding at most max projectiles. All memory is
// allocated here; nothing else in the pool allocates.
func New(max int) *Pool {
	if max < 0 {
		max = 0
	}
	return &Pool{
		x:      make([]float64, max),
		y:      make([]float64, max),
		vx:     make([]float64, max),
		vy:     make([]float64, max),
		radius: make([]float64, max),
		frame:  make([]image.Rectangle, max),
		marked: make([]bool, max),
		max:    max,
	}
}

// Len returns the number of live projectiles.
func (p *Pool) Len() int { return p.end }

// Cap returns the fixed capacity.
func (p *Pool) Cap() int { return p.max }

// Add appends a projectile. When the pool is full the projectile is dropped
// and Add reports false; overflow is a capacity policy, not an error.
func (p *Pool) Add(position, velocity dmath.Vec2, frame image.Rectangle, radius float64) bool {
	if p.end >= p.max {
		return false
	}
	i := p.end
	p.x[i], p.y[i] = position.X, position.Y
	p.vx[i], p.vy[i] = velocity.X, velocity.Y
	p.frame[i] = frame
	p.radius[i] = radius
	p.marked[i] = false
	p.end++
	return true
}

// Update advances every live projectile by velocity*step and then asks
// classify whether it should be discarded. A discarded slot is refilled from
// the tail and examined again in the same pass; the refilled record comes from
// the not yet visited tail, so every record is advanced exactly once per call.
func (p *Pool) Update(step float64, classify func(x, y float64) bool) {
	for i := 0; i < p.end; {
		p.x[i] += p.vx[i] * step
		p.y[i] += p.vy[i] * step
		if classify != nil && classify(p.x[i], p.y[i]) {
			p.Remove(i)
			continue
		}
		i++
	}
}

// Remove discards record i by moving the last live record into its slot.
// i must lie in [0, Len()).
func (p *Pool) Remove(i int) {
	p.check(i)
	last := p.end - 1
	if p.marked[i] {
		p.pending--
	}
	if i != last {
		p.x[i], p.y[i] = p.x[last], p.y[last]
		p.vx[i], p.vy[i] = p.vx[last], p.vy[last]
		p.frame[i] = p.frame[last]
		p.radius[i] = p.radius[last]
		p.marked[i] = p.marked[last]
	}
	p.marked[last] = false
	p.end--
}

// Mark flags record i for removal by the next Sweep. It reports false when i
// was already marked, which lets a caller consume a projectile at most once.
func (p *Pool) Mark(i int) bool {
	p.check(i)
	if p.marked[i] {
		return false
	}
	p.marked[i] = true
	p.pending++
	return true
}

// Marked reports whether record i is waiting for Sweep.
func (p *Pool) Marked(i int) bool {
	p.check(i)
	return p.marked[i]
}

// Sweep removes every marked record and returns how many were removed.
// Indices are visited from the tail down so a swap never moves a marked
// record into a slot that has already been visited.
func (p *Pool) Sweep() int {
	if p.pending == 0 {
		return 0
	}
	removed := 0
	for i := p.end - 1; i >= 0 && p.pending > 0; i-- {
		if p.marked[i] {
			p.Remove(i)
			removed++
		}
	}
	return removed
}

// Reset empties the pool without releasing memory.
func (p *Pool) Reset() {
	for i := 0; i < p.end; i++ {
		p.marked[i] = false
	}
	p.end = 0
	p.pending = 0
}

// Position returns the position of record i.
func (p *Pool) Position(i int) dmath.Vec2 {
	p.check(i)
	return dmath.Vec2{X: p.x[i], Y: p.y[i]}
}

// Velocity returns the velocity of record i.
func (p *Pool) Velocity(i int) dmath.Vec2 {
	p.check(i)
	return dmath.Vec2{X: p.vx[i], Y: p.vy[i]}
}

// Y returns the y coordinate of record i without building a vector; the
// collision pre-filter reads nothing else.
func (p *Pool) Y(i int) float64 {
	p.check(i)
	return p.y[i]
}

// Radius returns the hit radius of record i.
func (p *Pool) Radius(i int) float64 {
	p.check(i)
	return p.radius[i]
}

// Frame returns the sprite source rectangle of record i.
func (p *Pool) Frame(i int) image.Rectangle {
	p.check(i)
	return p.frame[i]
}

// All yields (position, frame) for every live record. The sequence reads the
// pool as it is when iterated and may be restarted each frame.
func (p *Pool) All() iter.Seq2[dmath.Vec2, image.Rectangle] {
	return func(yield func(dmath.Vec2, image.Rectangle) bool) {
		for i := 0; i < p.end; i++ {
			if !yield(dmath.Vec2{X: p.x[i], Y: p.y[i]}, p.frame[i]) {
				return
			}
		}
	}
}

func (p *Pool) check(i int) {
	if i < 0 || i >= p.end {
		panic(fmt.Sprintf("bulletpool: index %d out of range [0,%d)", i, p.end))
	}
}
