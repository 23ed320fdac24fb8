package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/components"
	"github.com/nnarke/scrolly/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSequence applies finished frame loads and mirrors the preload state
// into the loading component.
func UpdateSequence(ecs *ecs.ECS) {
	tags.Sequence.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Sequence.Get(e)
		seq.Player.Poll()

		loading := components.Loading.Get(e)
		loading.Percent = seq.Player.Percent()
		loading.Visible = !seq.Player.Ready()
	})
}

var sequenceDrawOp = &ebiten.DrawImageOptions{}

// DrawSequence renders at most one pending frame per display refresh and
// blits the canvas to the screen.
func DrawSequence(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Sequence.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Sequence.Get(e)
		seq.Player.Tick()

		if seq.Canvas.Image == nil {
			return
		}
		sequenceDrawOp.GeoM.Reset()
		screen.DrawImage(seq.Canvas.Image, sequenceDrawOp)
	})
}

// GetLoading returns the preload state, nil when no sequence exists.
func GetLoading(ecs *ecs.ECS) *components.LoadingData {
	entry, ok := components.Loading.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Loading.Get(entry)
}

// GetSequence returns the sequence component, nil when none exists.
func GetSequence(ecs *ecs.ECS) *components.SequenceData {
	entry, ok := components.Sequence.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Sequence.Get(entry)
}
