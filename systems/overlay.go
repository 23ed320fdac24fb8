package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/nnarke/scrolly/components"
	cfg "github.com/nnarke/scrolly/config"
	"github.com/nnarke/scrolly/fonts"
	"github.com/nnarke/scrolly/tags"
	"github.com/nnarke/scrolly/wrap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Sections never touch the window edge even with a zero margin
const overlayMinPadding = 32

// UpdateOverlay moves and fades every section to match the scroll progress.
func UpdateOverlay(ecs *ecs.ECS) {
	progress := ScrollProgress(ecs)
	tags.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		sec := components.OverlaySection.Get(e)
		sec.Opacity = math.Max(0, math.Min(1, sec.Section.Opacity.At(progress, 1)))
		sec.OffsetY = sec.Section.Y.At(progress, 0)
	})
}

func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	var sections []*components.OverlaySectionData
	tags.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		sec := components.OverlaySection.Get(e)
		if sec.Opacity > 0 {
			sections = append(sections, sec)
		}
	})
	sort.Slice(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	for _, sec := range sections {
		drawSection(screen, sec)
	}
}

func drawSection(screen *ebiten.Image, sec *components.OverlaySectionData) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	s := sec.Section

	titleFace := fonts.Heading.Face()
	if s.Hero {
		titleFace = fonts.Hero.Face()
	}
	bodyFace := fonts.Body.Face()

	pad := math.Max(s.Margin, overlayMinPadding)
	wrapWidth := float64(width) - 2*pad
	if s.MaxWidth > 0 && s.MaxWidth < wrapWidth {
		wrapWidth = s.MaxWidth
	}

	titleLines := wrap.Lines(s.Title, wrapWidth, func(l string) float64 { return text.Advance(l, titleFace) })
	bodyLines := wrap.Lines(s.Body, wrapWidth, func(l string) float64 { return text.Advance(l, bodyFace) })

	titleLH := lineHeight(titleFace)
	bodyLH := lineHeight(bodyFace)
	blockHeight := float64(len(titleLines))*titleLH + float64(len(bodyLines))*bodyLH
	if len(titleLines) > 0 && len(bodyLines) > 0 {
		blockHeight += cfg.Overlay.BodyGap
	}

	x, align := float64(width)/2, text.AlignCenter
	switch s.Align {
	case cfg.AlignLeft:
		x, align = pad, text.AlignStart
	case cfg.AlignRight:
		x, align = float64(width)-pad, text.AlignEnd
	}

	y := float64(height)/2 + sec.OffsetY - blockHeight/2
	if len(titleLines) > 0 {
		drawLines(screen, titleLines, titleFace, x, y, titleLH, align, cfg.Overlay.TitleColor, sec.Opacity)
		y += float64(len(titleLines))*titleLH + cfg.Overlay.BodyGap
	}
	if len(bodyLines) > 0 {
		drawLines(screen, bodyLines, bodyFace, x, y, bodyLH, align, cfg.Overlay.BodyColor, sec.Opacity)
	}
}

func drawLines(screen *ebiten.Image, lines []string, face text.Face, x, y, lineSpacing float64, align text.Align, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = align
	for i, l := range lines {
		if i > 0 {
			op.GeoM.Translate(0, lineSpacing)
		}
		text.Draw(screen, l, face, op)
	}
}

func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
