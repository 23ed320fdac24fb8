package ui

import (
	"bytes"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	cfg "github.com/nnarke/scrolly/config"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadingUI covers the screen while frames are preloading
type LoadingUI struct {
	UI *ebitenui.UI

	percentLabel *widget.Label
	bar          *widget.Container // track, the fill is drawn over it

	titleFace text.Face
	smallFace text.Face

	percent int
}

func NewLoadingUI() *LoadingUI {
	lui := &LoadingUI{}
	lui.loadFonts()
	lui.buildUI()
	lui.SetPercent(0)
	return lui
}

func (lui *LoadingUI) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	lui.titleFace = &text.GoTextFace{
		Source: boldSource,
		Size:   28,
	}
	lui.smallFace = &text.GoTextFace{
		Source: regularSource,
		Size:   14,
	}
}

func (lui *LoadingUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Loading.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Loading.Title, &lui.titleFace, &widget.LabelColor{
			Idle: cfg.Loading.TitleColor,
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	)
	contentContainer.AddChild(titleLabel)

	lui.bar = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Loading.TrackColor)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Loading.BarWidth, cfg.Loading.BarHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)
	contentContainer.AddChild(lui.bar)

	lui.percentLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: cfg.Loading.TextColor,
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	)
	contentContainer.AddChild(lui.percentLabel)

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetPercent updates the bar and the percentage label, p in [0,100]
func (lui *LoadingUI) SetPercent(p int) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	lui.percent = p
	lui.percentLabel.Label = fmt.Sprintf("%d%%", p)
}

func (lui *LoadingUI) Percent() int {
	return lui.percent
}

func (lui *LoadingUI) Update() {
	lui.UI.Update()
}

func (lui *LoadingUI) Draw(screen *ebiten.Image) {
	lui.UI.Draw(screen)

	// Fill drawn over the track once layout has placed it
	r := lui.bar.GetWidget().Rect
	if r.Dx() == 0 || lui.percent == 0 {
		return
	}
	fill := float32(r.Dx()) * float32(lui.percent) / 100
	vector.FillRect(screen,
		float32(r.Min.X), float32(r.Min.Y),
		fill, float32(r.Dy()),
		cfg.Loading.FillColor, false)
}
