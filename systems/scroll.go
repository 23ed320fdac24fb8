package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/scroll"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll applies this tick's scroll input and advances smoothing.
// Runs after UpdateInput.
func UpdateScroll(ecs *ecs.ECS) {
	entry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return
	}
	sd := components.Scroll.Get(entry)
	dt := 1 / float64(ebiten.TPS())

	if input := GetInput(ecs); input != nil {
		_, height := sd.Viewport.Size()
		applyScrollInput(sd.Tracker, input, height, dt)
	}
	sd.Tracker.Update(dt)
}

func applyScrollInput(t *scroll.Tracker, input *components.InputData, viewportHeight int, dt float64) {
	// Wheel up moves back through the sequence
	if input.WheelY != 0 {
		t.ScrollBy(-input.WheelY * cfg.Scroll.WheelSensitivity)
	}

	if input.Pressed(cfg.ActionScrollDown) {
		t.ScrollBy(cfg.Scroll.KeySpeed * dt)
	}
	if input.Pressed(cfg.ActionScrollUp) {
		t.ScrollBy(-cfg.Scroll.KeySpeed * dt)
	}

	if input.JustPressed(cfg.ActionPageDown) {
		t.ScrollBy(float64(viewportHeight))
	}
	if input.JustPressed(cfg.ActionPageUp) {
		t.ScrollBy(-float64(viewportHeight))
	}

	if input.JustPressed(cfg.ActionHome) {
		t.ScrollTo(0)
	}
	if input.JustPressed(cfg.ActionEnd) {
		t.ScrollTo(1)
	}
}

// ResizeViewport publishes the window size to everything subscribed to the
// viewport: the tracker first, then the player.
func ResizeViewport(ecs *ecs.ECS, width, height int) {
	entry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return
	}
	components.Scroll.Get(entry).Viewport.Set(width, height)
}

// ScrollProgress returns the published progress, 0 before the scroll entity
// exists.
func ScrollProgress(ecs *ecs.ECS) float64 {
	entry, ok := components.Scroll.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Scroll.Get(entry).Tracker.Progress()
}
