package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage removes amount points, never going below zero, and reports whether
// this call took the health to zero.
func (h *HealthData) Damage(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

var Health = donburi.NewComponentType[HealthData]()
