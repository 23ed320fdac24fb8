package factory

import (
	"github.com/nnarke/scrolly/archetypes"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateOverlaySection(ecs *ecs.ECS, section cfg.OverlaySection, order int) *donburi.Entry {
	entry := archetypes.OverlaySection.Spawn(ecs)
	components.OverlaySection.SetValue(entry, components.OverlaySectionData{
		Section: section,
		Order:   order,
		Opacity: section.Opacity.At(0, 1),
		OffsetY: section.Y.At(0, 0),
	})
	return entry
}

// ReplaceOverlaySections removes every overlay section and spawns one per
// entry of sections, in order.
func ReplaceOverlaySections(ecs *ecs.ECS, sections []cfg.OverlaySection) {
	var stale []donburi.Entity
	tags.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, entity := range stale {
		ecs.World.Remove(entity)
	}

	for i, s := range sections {
		CreateOverlaySection(ecs, s, i)
	}
}
