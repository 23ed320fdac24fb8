package tags

import "github.com/yohamta/donburi"

var (
	Sequence = donburi.NewTag().SetName("Sequence")
	Scroll   = donburi.NewTag().SetName("Scroll")
	Overlay  = donburi.NewTag().SetName("Overlay")
)
