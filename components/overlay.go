package components

import (
	cfg "github.com/nnarke/scrolly/config"
	"github.com/yohamta/donburi"
)

// OverlaySectionData is one block of overlay copy and its current animation
// state.
type OverlaySectionData struct {
	Section cfg.OverlaySection
	Order   int

	Opacity float64 // 0..1
	OffsetY float64 // pixels, relative to the vertical center
}

var OverlaySection = donburi.NewComponentType[OverlaySectionData]()
