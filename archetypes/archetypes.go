package archetypes

import (
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Sequence = newArchetype(
		tags.Sequence,
		components.Sequence,
		components.Loading,
	)
	Scroll = newArchetype(
		tags.Scroll,
		components.Scroll,
	)
	OverlaySection = newArchetype(
		tags.Overlay,
		components.OverlaySection,
	)
	Settings = newArchetype(
		components.Settings,
		components.DebugStats,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
