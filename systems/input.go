package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/archetypes"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/yohamta/donburi/ecs"
)

// Bindings maps each action to the keys that trigger it
var Bindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionScrollUp:         {ebiten.KeyArrowUp, ebiten.KeyW},
	cfg.ActionScrollDown:       {ebiten.KeyArrowDown, ebiten.KeyS},
	cfg.ActionPageUp:           {ebiten.KeyPageUp},
	cfg.ActionPageDown:         {ebiten.KeyPageDown, ebiten.KeySpace},
	cfg.ActionHome:             {ebiten.KeyHome},
	cfg.ActionEnd:              {ebiten.KeyEnd},
	cfg.ActionToggleFullscreen: {ebiten.KeyF11},
	cfg.ActionToggleDebug:      {ebiten.KeyF3},
	cfg.ActionQuit:             {ebiten.KeyEscape},
}

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateScroll in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[action] = true
				break
			}
		}
	}

	_, input.WheelY = ebiten.Wheel()
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(ecs.World); ok {
		return components.Input.Get(entry)
	}
	entry := archetypes.Input.Spawn(ecs)
	return components.Input.Get(entry)
}

// GetInput returns the input state, or nil before the first UpdateInput
func GetInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}
