package factory

import (
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/archetypes"
	"github.com/nnarke/scrolly/assets"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/sequence"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewFrameLoader reads frames from cfg.Sequence.Dir and uploads them as
// ebiten images.
func NewFrameLoader() *assets.FrameLoader {
	loader := assets.NewFrameLoader(os.DirFS(cfg.Sequence.Dir), cfg.Sequence.Pattern)
	loader.MaxWidth = cfg.Sequence.MaxFrameWidth
	loader.MaxHeight = cfg.Sequence.MaxFrameHeight
	loader.Upload = func(img image.Image) sequence.Frame {
		return ebiten.NewImageFromImage(img)
	}
	return loader
}

// SequenceOptions builds player options from the current config.
func SequenceOptions() sequence.Options {
	return sequence.Options{
		TotalFrames: cfg.Sequence.TotalFrames,
		Step:        cfg.Sequence.Step,
		Concurrency: cfg.Sequence.Concurrency,
		Verbose:     cfg.Debug.Verbose,
	}
}

// CreateSequence spawns the sequence entity. The player is neither started
// nor mounted.
func CreateSequence(ecs *ecs.ECS, opts sequence.Options, fetcher sequence.Fetcher) (*donburi.Entry, error) {
	canvas := components.NewCanvas(nil)
	player, err := sequence.New(opts, fetcher, canvas)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Sequence.Spawn(ecs)
	components.Sequence.SetValue(entry, components.SequenceData{
		Player: player,
		Canvas: canvas,
	})
	components.Loading.SetValue(entry, components.LoadingData{
		Visible: true,
	})
	return entry, nil
}
