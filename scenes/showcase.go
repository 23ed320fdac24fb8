package scenes

import (
	"context"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/systems"
	"github.com/nnarke/scrolly/systems/factory"
	"github.com/nnarke/scrolly/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowcaseOptions configure a ShowcaseScene
type ShowcaseOptions struct {
	ConfigPath string // overlay copy is reloaded from here when Watch is set
	Watch      bool
}

// ShowcaseScene is the scroll-driven frame sequence with its overlay copy.
type ShowcaseScene struct {
	ecs       *ecs.ECS
	opts      ShowcaseOptions
	once      sync.Once
	loadingUI *ui.LoadingUI
	watcher   *cfg.Watcher
	cancel    context.CancelFunc

	width, height int
	ready         bool
	err           error
}

func NewShowcaseScene(opts ShowcaseOptions) *ShowcaseScene {
	return &ShowcaseScene{opts: opts}
}

func (s *ShowcaseScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}

	systems.ResizeViewport(s.ecs, s.width, s.height)
	s.drainWatcher()
	s.ecs.Update()

	if loading := systems.GetLoading(s.ecs); loading != nil && loading.Visible {
		s.loadingUI.SetPercent(loading.Percent)
		s.loadingUI.Update()
	} else if !s.ready {
		s.ready = true
		log.Printf("scrolly: frames ready, %s", systems.DebugSummary(s.ecs))
	}

	if systems.GetOrCreateSettings(s.ecs).Quit {
		return ebiten.Termination
	}
	return nil
}

func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Sequence.ClearColor)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Layout records the window size; it is published on the next Update.
func (s *ShowcaseScene) Layout(width, height int) {
	s.width, s.height = width, height
}

// Close stops the preload and releases every subscription.
func (s *ShowcaseScene) Close() {
	if seq := s.sequence(); seq != nil {
		seq.Player.Close()
	}
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			log.Printf("config: close watcher: %v", err)
		}
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *ShowcaseScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and toggles first, then scroll so the player sees this tick's progress
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateScroll)
	ecs.AddSystem(systems.UpdateSequence)
	ecs.AddSystem(systems.UpdateOverlay)

	ecs.AddRenderer(cfg.Default, systems.DrawSequence)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)
	ecs.AddRenderer(cfg.Default, s.drawLoading)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	s.ecs = ecs

	scrollEntry := factory.CreateScroll(s.ecs)
	factory.ReplaceOverlaySections(s.ecs, cfg.Overlay.Sections)
	systems.GetOrCreateSettings(s.ecs)

	seqEntry, err := factory.CreateSequence(s.ecs, factory.SequenceOptions(), factory.NewFrameLoader())
	if err != nil {
		s.err = err
		return
	}

	sc := components.Scroll.Get(scrollEntry)
	player := components.Sequence.Get(seqEntry).Player
	if err := player.Mount(sc.Tracker, sc.Viewport); err != nil {
		s.err = err
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	if err := player.Start(ctx); err != nil {
		s.err = err
		return
	}

	s.loadingUI = ui.NewLoadingUI()

	if s.opts.Watch && s.opts.ConfigPath != "" {
		w, err := cfg.NewWatcher(s.opts.ConfigPath)
		if err != nil {
			log.Printf("config: watch %s: %v", s.opts.ConfigPath, err)
		} else {
			s.watcher = w
		}
	}
}

func (s *ShowcaseScene) drawLoading(ecs *ecs.ECS, screen *ebiten.Image) {
	if loading := systems.GetLoading(ecs); loading != nil && loading.Visible {
		s.loadingUI.Draw(screen)
	}
}

func (s *ShowcaseScene) drainWatcher() {
	if s.watcher == nil {
		return
	}
	for {
		select {
		case path := <-s.watcher.Events:
			changed, err := cfg.Reload(path)
			if err != nil {
				log.Printf("config: reload %s: %v", path, err)
				continue
			}
			if changed {
				factory.ReplaceOverlaySections(s.ecs, cfg.Overlay.Sections)
				log.Printf("config: reloaded overlay from %s", path)
			}
		case err := <-s.watcher.Errors:
			log.Printf("config: watch: %v", err)
		default:
			return
		}
	}
}

func (s *ShowcaseScene) sequence() *components.SequenceData {
	if s.ecs == nil {
		return nil
	}
	return systems.GetSequence(s.ecs)
}
