package gamemath

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		return lo
	}
	return v
}

// Lerp moves from toward to by t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Overlaps is the exact axis-aligned box test. Touching edges count as
// overlap.
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return !(ax+aw < bx || ax > bx+bw || ay+ah < by || ay > by+bh)
}

// WithinBand is the coarse candidacy filter: |a - b| < band.
func WithinBand(a, b, band float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < band
}
