package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// SettingsData stores runtime toggles
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	Quit       bool // set when the user asked to close the window
}

var Settings = donburi.NewComponentType[SettingsData]()

// LoadingData mirrors the preload state for the loading screen
type LoadingData struct {
	Percent int
	Visible bool
}

var Loading = donburi.NewComponentType[LoadingData]()

// DebugStatsData caches slow-to-sample process stats for the debug HUD
type DebugStatsData struct {
	RSS       uint64
	SampledAt time.Time
}

var DebugStats = donburi.NewComponentType[DebugStatsData]()
