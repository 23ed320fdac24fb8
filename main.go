package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/fonts"
	"github.com/nnarke/scrolly/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.ShowcaseOptions) *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewShowcaseScene(opts),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the screen size so the sequence is drawn
// at full resolution and re-cropped on every resize.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.Layout(width, height)
	return width, height
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	framesDir := flag.String("frames", config.Sequence.Dir, "directory holding the frame images")
	total := flag.Int("total", config.Sequence.TotalFrames, "logical frames in the sequence")
	step := flag.Int("step", config.Sequence.Step, "fetch every n-th frame")
	debug := flag.Bool("debug", false, "show the debug HUD and log frame load failures")
	watch := flag.Bool("watch", false, "reload overlay copy when the config file changes")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	if *configPath != "" {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		f.Apply()
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "frames":
			config.Sequence.Dir = *framesDir
		case "total":
			config.Sequence.TotalFrames = *total
		case "step":
			config.Sequence.Step = *step
		case "debug":
			config.Debug.Enabled = *debug
			config.Debug.Verbose = *debug
		}
	})

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *watch && *configPath == "" {
		log.Printf("Warning: -watch has no effect without -config")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetFullscreen(*fullscreen)

	game := NewGame(scenes.ShowcaseOptions{
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	err := ebiten.RunGame(game)
	game.scene.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
