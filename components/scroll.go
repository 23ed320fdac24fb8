package components

import (
	"github.com/nnarke/scrolly/scroll"
	"github.com/yohamta/donburi"
)

// ScrollData is the host side of the progress signal: the tracker publishes
// progress, the viewport publishes the window size.
type ScrollData struct {
	Tracker  *scroll.Tracker
	Viewport *scroll.Viewport
}

var Scroll = donburi.NewComponentType[ScrollData]()
