package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nnarke/scrolly/sequence"
	"github.com/yohamta/donburi"
)

// SequenceData holds the frame sequence player and the canvas it draws on.
type SequenceData struct {
	Player *sequence.Player
	Canvas *Canvas
}

var Sequence = donburi.NewComponentType[SequenceData]()

// Canvas is an offscreen image used as the player's drawing surface. It keeps
// the last drawn frame between renders.
type Canvas struct {
	Image *ebiten.Image
	Fill  color.Color // nil clears to transparent
	op    ebiten.DrawImageOptions
}

func NewCanvas(fill color.Color) *Canvas {
	return &Canvas{Fill: fill}
}

func (c *Canvas) Resize(width, height int) {
	if c.Image != nil {
		if b := c.Image.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		c.Image.Deallocate()
	}
	c.Image = ebiten.NewImage(width, height)
	c.Clear()
}

func (c *Canvas) Clear() {
	if c.Image == nil {
		return
	}
	if c.Fill == nil {
		c.Image.Clear()
		return
	}
	c.Image.Fill(c.Fill)
}

func (c *Canvas) DrawFrame(frame sequence.Frame, dst sequence.Rect) {
	img, ok := frame.(*ebiten.Image)
	if !ok || c.Image == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	c.op.GeoM.Reset()
	c.op.GeoM.Scale(dst.W/float64(b.Dx()), dst.H/float64(b.Dy()))
	c.op.GeoM.Translate(dst.X, dst.Y)
	c.op.Filter = ebiten.FilterLinear
	c.Image.DrawImage(img, &c.op)
}
