package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/nnarke/scrolly/sequence"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFrameLoaderFetch(t *testing.T) {
	fsys := fstest.MapFS{
		"frame_000.png": {Data: encodePNG(t, 64, 36)},
		"frame_003.png": {Data: []byte("not an image")},
	}
	l := NewFrameLoader(fsys, "frame_%03d.png")

	cases := []struct {
		name    string
		index   int
		wantErr error
		wantW   int
	}{
		{"decodes", 0, nil, 64},
		{"missing", 6, fs.ErrNotExist, 0},
		{"corrupt", 3, image.ErrFormat, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := l.Fetch(context.Background(), c.index)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("err = %v, want %v", err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if got := f.Bounds().Dx(); got != c.wantW {
				t.Fatalf("width = %d, want %d", got, c.wantW)
			}
		})
	}
}

func TestFrameLoaderCanceled(t *testing.T) {
	l := NewFrameLoader(fstest.MapFS{"frame_000.png": {Data: encodePNG(t, 4, 4)}}, "frame_%03d.png")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.Fetch(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFrameLoaderLimit(t *testing.T) {
	l := NewFrameLoader(fstest.MapFS{}, "frame_%03d.png")
	l.MaxWidth, l.MaxHeight = 32, 32

	img, err := l.Decode(encodePNG(t, 128, 64))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("downscaled to %dx%d, want 32x16", b.Dx(), b.Dy())
	}

	small, err := l.Decode(encodePNG(t, 20, 10))
	if err != nil {
		t.Fatal(err)
	}
	if b := small.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Fatalf("small frame resized to %dx%d", b.Dx(), b.Dy())
	}
}

func TestFrameLoaderDrivesPlayer(t *testing.T) {
	fsys := fstest.MapFS{
		"f_000.png": {Data: encodePNG(t, 16, 8)},
		"f_003.png": {Data: encodePNG(t, 16, 8)},
		// f_006.png missing
	}
	l := NewFrameLoader(fsys, "f_%03d.png")

	surface := &recordingSurface{}
	p, err := sequence.New(sequence.Options{TotalFrames: 9, Step: 3}, l, surface)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	for !p.Ready() {
		p.Poll()
	}
	if p.Frames().Failed() != 1 || p.Percent() != 100 {
		t.Fatalf("failed=%d percent=%d", p.Frames().Failed(), p.Percent())
	}

	p.OnResize(160, 80)
	p.OnProgressChange(1)
	p.Tick()
	if p.DrawnIndex() != 3 {
		t.Fatalf("drawn = %d, want fallback 3", p.DrawnIndex())
	}
	if surface.last != (sequence.Rect{W: 160, H: 80}) {
		t.Fatalf("dst = %+v", surface.last)
	}
	p.Close()
}

type recordingSurface struct {
	last sequence.Rect
}

func (s *recordingSurface) Resize(int, int) {}
func (s *recordingSurface) Clear()          {}

func (s *recordingSurface) DrawFrame(_ sequence.Frame, dst sequence.Rect) {
	s.last = dst
}
