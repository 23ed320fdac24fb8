package factory

import (
	"github.com/nnarke/scrolly/archetypes"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/scroll"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScroll spawns the scroll entity. The tracker follows the viewport
// height so a resize keeps the progress and rescales the pixel position.
func CreateScroll(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Scroll.Spawn(ecs)

	tracker := scroll.NewTracker(scroll.TrackerOptions{
		Length:           cfg.Scroll.Length,
		SmoothingSeconds: cfg.Scroll.SmoothingSeconds,
	})
	viewport := scroll.NewViewport()
	viewport.Subscribe(func(_, height int) {
		tracker.SetViewportHeight(height)
	})

	components.Scroll.SetValue(entry, components.ScrollData{
		Tracker:  tracker,
		Viewport: viewport,
	})
	return entry
}
