package config

import (
	"image/color"

	"github.com/nnarke/scrolly/motion"
)

// Default is the only render layer
const Default = 0

// Config holds general window configuration
type Config struct {
	Width  int // initial window size
	Height int
	Title  string
	TPS    int // update ticks per second
}

// SequenceConfig describes the frame sequence and how it is fetched
type SequenceConfig struct {
	TotalFrames int    // logical frames in the source sequence
	Step        int    // only every Step-th frame is fetched
	Dir         string // directory holding the frame assets
	Pattern     string // file name with a single %03d for the frame index
	Concurrency int    // simultaneous frame loads

	// Frames larger than this are downscaled on load (0 keeps full size)
	MaxFrameWidth  int
	MaxFrameHeight int

	ClearColor color.RGBA // shown until the first frame is drawn
}

// ScrollConfig contains scroll input and smoothing configuration
type ScrollConfig struct {
	Length           float64 // height of the scrolled region in viewport heights
	WheelSensitivity float64 // pixels per wheel notch
	KeySpeed         float64 // pixels per second while an arrow key is held
	SmoothingSeconds float64 // 0 disables smoothing
}

// LoadingConfig contains loading screen configuration values
type LoadingConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TrackColor      color.RGBA
	FillColor       color.RGBA
	Title           string
	BarWidth        int
	BarHeight       int
}

// Align positions an overlay section horizontally
type Align string

const (
	AlignCenter Align = "center"
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
)

// OverlaySection is one block of copy shown over the sequence. Y offsets
// (pixels) and opacity are keyed to scroll progress.
type OverlaySection struct {
	Title    string           `yaml:"title"`
	Body     string           `yaml:"body"`
	Align    Align            `yaml:"align"`
	Margin   float64          `yaml:"margin"`    // distance from the aligned edge
	MaxWidth float64          `yaml:"max_width"` // wrap width, 0 = viewport width minus margins
	Y        motion.Keyframes `yaml:"y"`
	Opacity  motion.Keyframes `yaml:"opacity"`
	Hero     bool             `yaml:"hero"` // use the large title face
}

// OverlayConfig contains overlay copy configuration
type OverlayConfig struct {
	TitleColor color.RGBA
	BodyColor  color.RGBA
	BodyGap    float64 // space between title and body
	Sections   []OverlaySection
}

// DebugConfig contains debug options, overridable by CLI flags
type DebugConfig struct {
	Enabled bool // show the debug HUD
	Verbose bool // log per-frame load failures
}

// Global configuration instances
var C *Config
var Sequence SequenceConfig
var Scroll ScrollConfig
var Loading LoadingConfig
var Overlay OverlayConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Charcoal   = color.RGBA{R: 0x12, G: 0x12, B: 0x12, A: 255}
	Neutral400 = color.RGBA{R: 163, G: 163, B: 163, A: 255}
	Neutral800 = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	Gray300    = color.RGBA{R: 209, G: 213, B: 219, A: 255}
	Blue500    = color.RGBA{R: 59, G: 130, B: 246, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "scrolly",
		TPS:    60,
	}

	Sequence = SequenceConfig{
		TotalFrames:    200,
		Step:           3,
		Dir:            "sequence",
		Pattern:        "frame_%03d_delay-0.04s.webp",
		Concurrency:    8,
		MaxFrameWidth:  1920,
		MaxFrameHeight: 1080,
		ClearColor:     Charcoal,
	}

	Scroll = ScrollConfig{
		Length:           5, // the section is five screens tall
		WheelSensitivity: 60,
		KeySpeed:         900,
		SmoothingSeconds: 0.35,
	}

	Loading = LoadingConfig{
		BackgroundColor: Black,
		TitleColor:      White,
		TextColor:       Neutral400,
		TrackColor:      Neutral800,
		FillColor:       Blue500,
		Title:           "Loading Experience...",
		BarWidth:        256,
		BarHeight:       8,
	}

	Overlay = OverlayConfig{
		TitleColor: White,
		BodyColor:  Gray300,
		BodyGap:    18,
		Sections:   DefaultSections(),
	}

	Debug = DebugConfig{
		Enabled: false,
		Verbose: false,
	}
}

// DefaultSections returns the built-in overlay copy.
func DefaultSections() []OverlaySection {
	return []OverlaySection{
		{
			Title:   "Hi, I’m Nayan Narke",
			Body:    "Web Developer | Graphic Designer | Video Editor",
			Align:   AlignCenter,
			Hero:    true,
			Y:       motion.Keyframes{In: []float64{0, 0.3}, Out: []float64{0, -50}},
			Opacity: motion.Keyframes{In: []float64{0, 0.2}, Out: []float64{1, 0}},
		},
		{
			Title:    "I help businesses build modern, high-performance websites.",
			Body:     "Strong visual identities and digital solutions that convert visitors into customers.",
			Align:    AlignLeft,
			Margin:   80,
			MaxWidth: 672,
			Y:        motion.Keyframes{In: []float64{0.2, 0.5}, Out: []float64{50, 0}},
			Opacity:  motion.Keyframes{In: []float64{0.2, 0.3, 0.5}, Out: []float64{0, 1, 0}},
		},
		{
			Title:    "Let’s build something impactful.",
			Align:    AlignRight,
			Margin:   80,
			MaxWidth: 672,
			Y:        motion.Keyframes{In: []float64{0.5, 0.8}, Out: []float64{50, 0}},
			Opacity:  motion.Keyframes{In: []float64{0.5, 0.6, 0.8}, Out: []float64{0, 1, 0}},
		},
	}
}
