package sequence

import (
	"context"
	"errors"
	"image"
	"math/rand"
	"testing"
)

type testFrame struct {
	id   int
	w, h int
}

func (f testFrame) Bounds() image.Rectangle { return image.Rect(0, 0, f.w, f.h) }

type draw struct {
	frame Frame
	dst   Rect
}

type testSurface struct {
	width, height int
	clears        int
	draws         []draw
	visible       *draw
}

func (s *testSurface) Resize(w, h int) { s.width, s.height = w, h }

func (s *testSurface) Clear() {
	s.clears++
	s.visible = nil
}

func (s *testSurface) DrawFrame(f Frame, dst Rect) {
	d := draw{frame: f, dst: dst}
	s.draws = append(s.draws, d)
	s.visible = &d
}

var errMissing = errors.New("missing")

// fetcherFailing returns 1920x1080 frames except for the listed indices.
func fetcherFailing(failed ...int) Fetcher {
	bad := make(map[int]bool)
	for _, i := range failed {
		bad[i] = true
	}
	return FetcherFunc(func(_ context.Context, index int) (Frame, error) {
		if bad[index] {
			return nil, errMissing
		}
		return testFrame{id: index, w: 1920, h: 1080}, nil
	})
}

func newLoadedPlayer(t *testing.T, total, step int, failed ...int) (*Player, *testSurface) {
	t.Helper()
	surface := &testSurface{}
	p, err := New(Options{TotalFrames: total, Step: step, Concurrency: 2}, fetcherFailing(failed...), surface)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	p.preloader.Wait()
	p.Poll()
	return p, surface
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opts Options
	}{
		{"zero_frames", Options{TotalFrames: 0, Step: 3}},
		{"zero_step", Options{TotalFrames: 10, Step: 0}},
		{"negative_step", Options{TotalFrames: 10, Step: -2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.opts, fetcherFailing(), &testSurface{})
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}

func TestLoadCompletion(t *testing.T) {
	cases := []struct {
		name   string
		failed []int
	}{
		{"all_succeed", nil},
		{"one_fails", []int{3}},
		{"all_fail", []int{0, 3, 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, _ := newLoadedPlayer(t, 9, 3, c.failed...)
			if got := p.Frames().Expected(); got != 3 {
				t.Fatalf("expected 3 fetches, got %d", got)
			}
			if !p.Ready() {
				t.Fatal("player should be ready once all fetches resolved")
			}
			if got := p.Percent(); got != 100 {
				t.Fatalf("percent = %d, want 100", got)
			}
			if got := p.Frames().Failed(); got != len(c.failed) {
				t.Fatalf("failed = %d, want %d", got, len(c.failed))
			}
		})
	}
}

func TestFrameSetArbitraryCompletionOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		fs := NewFrameSet(200, 3)
		order := Indices(200, 3)
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for n, idx := range order {
			if fs.Complete() {
				t.Fatalf("complete after %d of %d", n, len(order))
			}
			var err error
			if idx%2 == 0 {
				err = errMissing
			}
			if !fs.Resolve(idx, testFrame{id: idx, w: 4, h: 3}, err) {
				t.Fatalf("resolve %d rejected", idx)
			}
		}
		if !fs.Complete() || fs.Percent() != 100 {
			t.Fatalf("trial %d: complete=%v percent=%d", trial, fs.Complete(), fs.Percent())
		}
	}
}

func TestFrameSetWriteOnce(t *testing.T) {
	fs := NewFrameSet(9, 3)

	if fs.Resolve(4, testFrame{id: 4, w: 1, h: 1}, nil) {
		t.Fatal("index 4 is not fetched and must be rejected")
	}
	if fs.Resolve(9, testFrame{id: 9, w: 1, h: 1}, nil) {
		t.Fatal("out of range index must be rejected")
	}
	if !fs.Resolve(3, nil, errMissing) {
		t.Fatal("first resolve of 3 should apply")
	}
	if fs.Resolve(3, testFrame{id: 3, w: 1, h: 1}, nil) {
		t.Fatal("second resolve of 3 must be ignored")
	}
	if got := fs.State(3); got != SlotUnavailable {
		t.Fatalf("state = %v, want unavailable", got)
	}
	if got := fs.Percent(); got != 33 {
		t.Fatalf("percent = %d, want 33", got)
	}
}

func TestRenderFallsBackToLowerFrame(t *testing.T) {
	p, surface := newLoadedPlayer(t, 9, 3, 6)
	p.OnResize(800, 600)

	if !p.Render(7) {
		t.Fatal("render(7) should draw the frame at 3")
	}
	if got := surface.visible.frame.(testFrame).id; got != 3 {
		t.Fatalf("drew frame %d, want 3", got)
	}
	if p.DrawnIndex() != 3 {
		t.Fatalf("drawn index = %d, want 3", p.DrawnIndex())
	}
}

func TestRenderNoLoadedFrameKeepsPrevious(t *testing.T) {
	p, surface := newLoadedPlayer(t, 9, 3, 0, 3)
	p.OnResize(800, 600)

	if !p.Render(8) {
		t.Fatal("frame 6 loaded, render(8) should draw")
	}
	clears := surface.clears
	if p.Render(4) {
		t.Fatal("no frame at or below 3 loaded, render(4) must be a no-op")
	}
	if surface.clears != clears {
		t.Fatal("a no-op render must not clear the surface")
	}
	if got := surface.visible.frame.(testFrame).id; got != 6 {
		t.Fatalf("visible frame = %d, want previous 6", got)
	}
}

func TestRenderBeforeReadyIsNoop(t *testing.T) {
	surface := &testSurface{}
	block := make(chan struct{})
	fetcher := FetcherFunc(func(ctx context.Context, index int) (Frame, error) {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return testFrame{id: index, w: 16, h: 9}, nil
	})
	p, err := New(Options{TotalFrames: 9, Step: 3}, fetcher, surface)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	p.OnResize(800, 600)
	p.OnProgressChange(0.5)

	if p.Render(4) || p.Tick() {
		t.Fatal("nothing may be drawn before the player is ready")
	}
	if len(surface.draws) != 0 {
		t.Fatalf("unexpected draws: %d", len(surface.draws))
	}

	close(block)
	p.preloader.Wait()
	p.Poll()

	if !p.Ready() {
		t.Fatal("expected ready")
	}
	if !p.Tick() {
		t.Fatal("the latest frame should render on the first tick after ready")
	}
	if got := surface.visible.frame.(testFrame).id; got != 3 {
		t.Fatalf("drew frame %d, want 3", got)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	p, surface := newLoadedPlayer(t, 9, 3)
	p.OnResize(800, 600)

	p.Render(5)
	first := *surface.visible
	p.Render(5)
	second := *surface.visible

	if first != second {
		t.Fatalf("render twice differs: %+v vs %+v", first, second)
	}
	if surface.clears != len(surface.draws) {
		t.Fatalf("every draw must follow a clear: %d clears, %d draws", surface.clears, len(surface.draws))
	}
}

func TestProgressUpdatesCoalesce(t *testing.T) {
	p, surface := newLoadedPlayer(t, 9, 3)
	p.OnResize(800, 600)
	before := len(surface.draws)

	p.OnProgressChange(0.1)
	p.OnProgressChange(0.5)
	p.OnProgressChange(1.0)

	if !p.Tick() {
		t.Fatal("tick should render the pending frame")
	}
	if got := len(surface.draws) - before; got != 1 {
		t.Fatalf("%d renders for one refresh, want 1", got)
	}
	if got := surface.visible.frame.(testFrame).id; got != 6 {
		t.Fatalf("drew frame %d, want latest 6", got)
	}
	if p.Tick() {
		t.Fatal("second tick without a progress change must not render")
	}
	if p.FrameIndex() != 8 || p.EffectiveIndex() != 6 {
		t.Fatalf("frame=%d effective=%d", p.FrameIndex(), p.EffectiveIndex())
	}
}

func TestResizeRecropsCurrentFrame(t *testing.T) {
	p, surface := newLoadedPlayer(t, 9, 3)

	p.OnResize(800, 600)
	p.OnProgressChange(0.5)
	p.Tick()
	before := surface.visible.dst

	p.OnResize(1200, 400)
	after := surface.visible.dst

	if w, h := p.Size(); w != 1200 || h != 400 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if surface.width != 1200 || surface.height != 400 {
		t.Fatalf("surface not resized: %dx%d", surface.width, surface.height)
	}
	want, _ := CoverFit(1920, 1080, 1200, 400)
	if after != want {
		t.Fatalf("after resize got %+v, want %+v", after, want)
	}
	if after == before {
		t.Fatal("crop should change with the new size")
	}
	if !approx(before.X, (800-600*1920.0/1080.0)/2) || !approx(after.Y, (400-675)/2.0) {
		t.Fatalf("before %+v after %+v", before, after)
	}
}

type testSource struct {
	subscribed   int
	unsubscribed int
	progressFn   func(float64)
	resizeFn     func(int, int)
}

func (s *testSource) unsubscribe() func() {
	return func() { s.unsubscribed++ }
}

type testProgress struct{ *testSource }

func (s testProgress) Subscribe(fn func(float64)) func() {
	s.subscribed++
	s.progressFn = fn
	return s.unsubscribe()
}

type testResize struct{ *testSource }

func (s testResize) Subscribe(fn func(int, int)) func() {
	s.subscribed++
	s.resizeFn = fn
	return s.unsubscribe()
}

func TestMountAndCloseReleaseOnce(t *testing.T) {
	p, surface := newLoadedPlayer(t, 9, 3)
	progress := &testSource{}
	resize := &testSource{}

	if err := p.Mount(testProgress{progress}, testResize{resize}); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if err := p.Mount(testProgress{progress}, testResize{resize}); !errors.Is(err, ErrAlreadyMounted) {
		t.Fatalf("second Mount: %v", err)
	}
	if progress.subscribed != 1 || resize.subscribed != 1 {
		t.Fatalf("subscribed progress=%d resize=%d", progress.subscribed, resize.subscribed)
	}

	resize.resizeFn(640, 360)
	progress.progressFn(1)
	p.Tick()
	if got := surface.visible.frame.(testFrame).id; got != 6 {
		t.Fatalf("drew frame %d, want 6", got)
	}

	p.Close()
	p.Close()
	if progress.unsubscribed != 1 || resize.unsubscribed != 1 {
		t.Fatalf("unsubscribed progress=%d resize=%d", progress.unsubscribed, resize.unsubscribed)
	}
	if err := p.Mount(testProgress{progress}, testResize{resize}); !errors.Is(err, ErrClosed) {
		t.Fatalf("Mount after Close: %v", err)
	}
}

func TestCompletionsAfterCloseAreIgnored(t *testing.T) {
	surface := &testSurface{}
	release := make(chan struct{})
	fetcher := FetcherFunc(func(ctx context.Context, index int) (Frame, error) {
		<-release
		return testFrame{id: index, w: 16, h: 9}, nil
	})
	p, err := New(Options{TotalFrames: 9, Step: 3}, fetcher, surface)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	p.Close()
	close(release)
	p.preloader.Wait()

	if n := p.Poll(); n != 0 {
		t.Fatalf("applied %d completions after close", n)
	}
	if p.Frames().Completed() != 0 || p.Ready() {
		t.Fatal("frame table must not change after close")
	}
	p.OnResize(800, 600)
	p.OnProgressChange(1)
	if p.Tick() || len(surface.draws) != 0 {
		t.Fatal("closed player must not draw")
	}
	if err := p.Start(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("Start after Close: %v", err)
	}
}

func TestStepLargerThanTotal(t *testing.T) {
	p, surface := newLoadedPlayer(t, 5, 50)
	p.OnResize(100, 100)
	if p.Frames().Expected() != 1 {
		t.Fatalf("expected 1 fetch, got %d", p.Frames().Expected())
	}
	p.OnProgressChange(1)
	if !p.Tick() {
		t.Fatal("expected a render")
	}
	if got := surface.visible.frame.(testFrame).id; got != 0 {
		t.Fatalf("drew frame %d, want 0", got)
	}
}
