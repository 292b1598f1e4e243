package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestNormalize(t *testing.T) {
	n := Normalize(dmath.Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-9)

	assert.Equal(t, dmath.Vec2{}, Normalize(dmath.Vec2{}))
	// Below the library epsilon Normalized hands the input back; the
	// aim path needs a zero direction instead.
	tiny := dmath.Vec2{X: 1e-6, Y: -1e-6}
	assert.Equal(t, dmath.Vec2{}, Normalize(tiny))
	assert.Equal(t, dmath.Vec2{}, AimVelocity(dmath.Vec2{X: 5, Y: 5}, dmath.Vec2{X: 5, Y: 5}.Add(tiny), 10))
}

func TestAimVelocity(t *testing.T) {
	v := AimVelocity(dmath.Vec2{X: 10, Y: 10}, dmath.Vec2{X: 10, Y: 110}, 10)
	assert.InDelta(t, 0.0, v.X, 1e-9)
	assert.InDelta(t, 10.0, v.Y, 1e-9)

	assert.Equal(t, dmath.Vec2{}, AimVelocity(dmath.Vec2{X: 1, Y: 1}, dmath.Vec2{X: 1, Y: 1}, 10))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float64
		want bool
	}{
		{"disjoint horizontally", [4]float64{0, 0, 10, 10}, [4]float64{20, 0, 10, 10}, false},
		{"disjoint vertically", [4]float64{0, 0, 10, 10}, [4]float64{0, 11, 10, 10}, false},
		{"contained", [4]float64{2, 2, 2, 2}, [4]float64{0, 0, 10, 10}, true},
		{"partial", [4]float64{5, 5, 10, 10}, [4]float64{0, 0, 10, 10}, true},
		{"touching edge", [4]float64{10, 0, 5, 5}, [4]float64{0, 0, 10, 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.a[0], tt.a[1], tt.a[2], tt.a[3], tt.b[0], tt.b[1], tt.b[2], tt.b[3])
			assert.Equal(t, tt.want, got)
			// symmetric
			got = Overlaps(tt.b[0], tt.b[1], tt.b[2], tt.b[3], tt.a[0], tt.a[1], tt.a[2], tt.a[3])
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinBand(t *testing.T) {
	assert.True(t, WithinBand(100, 150, 51))
	assert.False(t, WithinBand(100, 150, 50))
	assert.True(t, WithinBand(150, 100, 51))
}

func TestClampAndLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.0, Clamp(7, 0, 10))
	assert.Equal(t, 3.0, Clamp(7, 3, 1))

	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
}
