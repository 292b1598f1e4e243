package animations

// Animation steps through sprite frames on a millisecond timer.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedMs          float64 // milliseconds before next frame
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

// Update accumulates elapsed time and advances at most one frame. The timer
// restarts from zero on every advance rather than carrying the remainder.
func (a *Animation) Update(elapsedMs float64) {
	a.elapsed += elapsedMs
	if a.elapsed < a.SpeedMs {
		return
	}
	a.elapsed = 0
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		if a.FreezeOnComplete {
			// Stay on last frame
			a.frame = a.Last
		} else {
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart rewinds to the first frame and clears Looped.
func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, speedMs float64) *Animation {
	return &Animation{
		First:   first,
		Last:    last,
		Step:    step,
		SpeedMs: speedMs,
		frame:   first,
		Looped:  false,
	}
}
