package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/archetypes"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the window toggles.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := GetInput(ecs)
	if input == nil {
		return
	}

	if input.JustPressed(cfg.ActionToggleDebug) {
		settings.Debug = !settings.Debug
	}

	if input.JustPressed(cfg.ActionToggleFullscreen) {
		settings.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(settings.Fullscreen)
	}

	if input.JustPressed(cfg.ActionQuit) {
		settings.Quit = true
	}
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(ecs)
	settings := components.Settings.Get(entry)
	settings.Debug = cfg.Debug.Enabled
	settings.Fullscreen = ebiten.IsFullscreen()
	return settings
}
