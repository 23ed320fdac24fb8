package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/nnarke/scrolly/sequence"
	_ "golang.org/x/image/webp"
)

// FrameLoader reads sequence frames from a file system. Decoding happens on
// the caller's goroutine; Upload turns the decoded image into a drawable
// frame (an *ebiten.Image in the game, the image itself in tests).
type FrameLoader struct {
	fsys    fs.FS
	pattern string

	// Frames larger than MaxWidth x MaxHeight are downscaled, keeping their
	// aspect ratio. Zero disables the limit for that axis.
	MaxWidth  int
	MaxHeight int

	Upload func(img image.Image) sequence.Frame
}

func NewFrameLoader(fsys fs.FS, pattern string) *FrameLoader {
	return &FrameLoader{
		fsys:    fsys,
		pattern: pattern,
		Upload:  func(img image.Image) sequence.Frame { return img },
	}
}

// Path returns the asset name of frame index.
func (l *FrameLoader) Path(index int) string {
	return sequence.FrameName(l.pattern, index)
}

// Fetch implements sequence.Fetcher.
func (l *FrameLoader) Fetch(ctx context.Context, index int) (sequence.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := l.Path(index)
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: read frame %s: %w", path, err)
	}
	// Decoding is the slow part; skip it when the player has gone away.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := l.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("assets: decode frame %s: %w", path, err)
	}
	return l.Upload(img), nil
}

// Decode decodes a webp, png or jpeg frame and applies the size limit.
func (l *FrameLoader) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return l.limit(img), nil
}

func (l *FrameLoader) limit(img image.Image) image.Image {
	b := img.Bounds()
	maxW, maxH := l.MaxWidth, l.MaxHeight
	if maxW <= 0 {
		maxW = b.Dx()
	}
	if maxH <= 0 {
		maxH = b.Dy()
	}
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
