package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData drives the end-of-run text. Tween is nil until the run ends.
type BannerData struct {
	Text  string
	Tween *gween.Tween
	Alpha float32
}

var Banner = donburi.NewComponentType[BannerData]()
