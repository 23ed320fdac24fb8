package sequence

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	ErrInvalidOptions = errors.New("sequence: invalid options")
	ErrAlreadyMounted = errors.New("sequence: player already mounted")
	ErrClosed         = errors.New("sequence: player closed")
)

// Surface is the drawing target of a player.
type Surface interface {
	// Resize changes the pixel size of the surface.
	Resize(width, height int)
	Clear()
	// DrawFrame draws frame scaled into dst.
	DrawFrame(frame Frame, dst Rect)
}

// ProgressSource publishes a scroll progress in [0,1].
type ProgressSource interface {
	Subscribe(fn func(progress float64)) (unsubscribe func())
}

// ResizeSource publishes the viewport size.
type ResizeSource interface {
	Subscribe(fn func(width, height int)) (unsubscribe func())
}

// Options configure a Player.
type Options struct {
	TotalFrames int // logical frames in the sequence
	Step        int // fetch every Step-th frame
	Concurrency int // simultaneous fetches, <= 0 for unbounded
	Verbose     bool
}

// DefaultOptions matches the 200 frame, every third frame source sequence.
func DefaultOptions() Options {
	return Options{
		TotalFrames: 200,
		Step:        3,
		Concurrency: 8,
	}
}

// Player renders the frame matching the latest scroll progress onto its
// surface. All methods must be called from the same goroutine (the game
// loop); only fetches run elsewhere.
type Player struct {
	opts    Options
	frames  *FrameSet
	fetcher Fetcher
	surface Surface

	preloader *Preloader
	results   <-chan Result

	width, height int
	progress      float64
	current       int
	pending       int
	hasPending    bool
	drawn         int

	ready   bool
	started bool
	closed  bool
	mounted bool
	unsubs  []func()
}

// New validates opts and allocates the frame table. Nothing is fetched until
// Start.
func New(opts Options, fetcher Fetcher, surface Surface) (*Player, error) {
	if opts.TotalFrames < 1 {
		return nil, fmt.Errorf("%w: total frames %d < 1", ErrInvalidOptions, opts.TotalFrames)
	}
	if opts.Step < 1 {
		return nil, fmt.Errorf("%w: step %d < 1", ErrInvalidOptions, opts.Step)
	}
	if fetcher == nil || surface == nil {
		return nil, fmt.Errorf("%w: fetcher and surface are required", ErrInvalidOptions)
	}
	if opts.Step > opts.TotalFrames {
		opts.Step = opts.TotalFrames
	}

	return &Player{
		opts:    opts,
		frames:  NewFrameSet(opts.TotalFrames, opts.Step),
		fetcher: fetcher,
		surface: surface,
		drawn:   -1,
	}, nil
}

// Start issues the frame fetches. Calling it again is a no-op.
func (p *Player) Start(ctx context.Context) error {
	if p.closed {
		return ErrClosed
	}
	if p.started {
		return nil
	}
	p.started = true
	p.preloader = NewPreloader(p.fetcher, p.opts.Concurrency)
	p.results = p.preloader.Start(ctx, Indices(p.opts.TotalFrames, p.opts.Step))
	return nil
}

// Mount subscribes the player to its progress and resize sources. Both
// subscriptions are released by Close.
func (p *Player) Mount(progress ProgressSource, resize ResizeSource) error {
	if p.closed {
		return ErrClosed
	}
	if p.mounted {
		return ErrAlreadyMounted
	}
	p.mounted = true
	if progress != nil {
		p.unsubs = append(p.unsubs, progress.Subscribe(p.OnProgressChange))
	}
	if resize != nil {
		p.unsubs = append(p.unsubs, resize.Subscribe(p.OnResize))
	}
	return nil
}

// Poll applies every fetch completion received so far and returns how many
// were applied. Once the last expected fetch resolves the player becomes
// ready and schedules a render of the current frame.
func (p *Player) Poll() int {
	if p.closed || p.results == nil {
		return 0
	}

	n := 0
	for {
		select {
		case r, ok := <-p.results:
			if !ok {
				p.results = nil
				return n
			}
			if !p.frames.Resolve(r.Index, r.Frame, r.Err) {
				continue
			}
			n++
			if r.Err != nil && p.opts.Verbose {
				log.Printf("sequence: frame %d unavailable: %v", r.Index, r.Err)
			}
			if !p.ready && p.frames.Complete() {
				p.ready = true
				p.schedule(p.current)
			}
		default:
			return n
		}
	}
}

// OnProgressChange records the latest progress. The render happens on the
// next Tick; intermediate values are dropped.
func (p *Player) OnProgressChange(progress float64) {
	if p.closed {
		return
	}
	p.progress = ClampProgress(progress)
	p.current = FrameIndex(p.progress, p.opts.TotalFrames)
	p.schedule(p.current)
}

func (p *Player) schedule(frameIndex int) {
	p.pending = frameIndex
	p.hasPending = true
}

// Tick is called once per display refresh. It renders the pending frame, if
// any, and reports whether something was drawn.
func (p *Player) Tick() bool {
	if p.closed || !p.hasPending || !p.ready {
		return false
	}
	p.hasPending = false
	return p.Render(p.pending)
}

// OnResize resizes the surface and immediately re-renders the last known
// frame at the new size. Non-positive sizes are ignored.
func (p *Player) OnResize(width, height int) {
	if p.closed || width <= 0 || height <= 0 {
		return
	}
	p.width, p.height = width, height
	p.surface.Resize(width, height)
	p.Render(p.current)
}

// Render clears the surface and draws frameIndex, or the nearest loaded
// frame below it, with cover fit. It is a no-op before the player is ready,
// before the surface has a size, or when no frame at or below the index has
// loaded; the previous content then stays visible.
func (p *Player) Render(frameIndex int) bool {
	if p.closed || !p.ready || p.width <= 0 || p.height <= 0 {
		return false
	}
	if frameIndex < 0 {
		frameIndex = 0
	}
	if frameIndex > p.opts.TotalFrames-1 {
		frameIndex = p.opts.TotalFrames - 1
	}

	frame, at, ok := p.frames.Lookup(EffectiveIndex(frameIndex, p.opts.Step))
	if !ok {
		return false
	}
	b := frame.Bounds()
	dst, ok := CoverFit(float64(b.Dx()), float64(b.Dy()), float64(p.width), float64(p.height))
	if !ok {
		return false
	}

	p.surface.Clear()
	p.surface.DrawFrame(frame, dst)
	p.drawn = at
	return true
}

// Close abandons pending fetches, ignores any completion that still arrives
// and releases the subscriptions taken by Mount.
func (p *Player) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.hasPending = false
	if p.preloader != nil {
		p.preloader.Stop()
	}
	for _, unsub := range p.unsubs {
		unsub()
	}
	p.unsubs = nil
}

func (p *Player) Options() Options { return p.opts }
func (p *Player) Frames() *FrameSet { return p.frames }
func (p *Player) Ready() bool       { return p.ready }
func (p *Player) Closed() bool      { return p.closed }
func (p *Player) Percent() int      { return p.frames.Percent() }
func (p *Player) Progress() float64 { return p.progress }

// FrameIndex is the frame matching the latest progress.
func (p *Player) FrameIndex() int { return p.current }

// EffectiveIndex is the fetched frame the current frame maps to.
func (p *Player) EffectiveIndex() int { return EffectiveIndex(p.current, p.opts.Step) }

// DrawnIndex is the frame last drawn, or -1.
func (p *Player) DrawnIndex() int { return p.drawn }

func (p *Player) Size() (width, height int) { return p.width, p.height }
