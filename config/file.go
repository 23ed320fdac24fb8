package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override of the defaults. Absent keys keep the
// built-in value.
type File struct {
	Window   *WindowFile      `yaml:"window"`
	Sequence *SequenceFile    `yaml:"sequence"`
	Scroll   *ScrollFile      `yaml:"scroll"`
	Overlay  []OverlaySection `yaml:"overlay"`
}

type WindowFile struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type SequenceFile struct {
	TotalFrames    *int   `yaml:"total_frames"`
	Step           *int   `yaml:"step"`
	Dir            string `yaml:"dir"`
	Pattern        string `yaml:"pattern"`
	Concurrency    *int   `yaml:"concurrency"`
	MaxFrameWidth  *int   `yaml:"max_frame_width"`
	MaxFrameHeight *int   `yaml:"max_frame_height"`
}

type ScrollFile struct {
	Length           *float64 `yaml:"length"`
	WheelSensitivity *float64 `yaml:"wheel_sensitivity"`
	KeySpeed         *float64 `yaml:"key_speed"`
	SmoothingSeconds *float64 `yaml:"smoothing_seconds"`
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML config. Unknown keys are rejected so typos surface.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &f, nil
}

// Apply copies every set value over the global configuration.
func (f *File) Apply() {
	if w := f.Window; w != nil {
		if w.Width > 0 {
			C.Width = w.Width
		}
		if w.Height > 0 {
			C.Height = w.Height
		}
		if w.Title != "" {
			C.Title = w.Title
		}
	}

	if s := f.Sequence; s != nil {
		setInt(&Sequence.TotalFrames, s.TotalFrames)
		setInt(&Sequence.Step, s.Step)
		setInt(&Sequence.Concurrency, s.Concurrency)
		setInt(&Sequence.MaxFrameWidth, s.MaxFrameWidth)
		setInt(&Sequence.MaxFrameHeight, s.MaxFrameHeight)
		if s.Dir != "" {
			Sequence.Dir = s.Dir
		}
		if s.Pattern != "" {
			Sequence.Pattern = s.Pattern
		}
	}

	if s := f.Scroll; s != nil {
		setFloat(&Scroll.Length, s.Length)
		setFloat(&Scroll.WheelSensitivity, s.WheelSensitivity)
		setFloat(&Scroll.KeySpeed, s.KeySpeed)
		setFloat(&Scroll.SmoothingSeconds, s.SmoothingSeconds)
	}

	f.ApplyOverlay()
}

// ApplyOverlay replaces the overlay sections, if the file has any. It is the
// only part of the file that is re-applied on hot reload.
func (f *File) ApplyOverlay() bool {
	if len(f.Overlay) == 0 {
		return false
	}
	sections := make([]OverlaySection, len(f.Overlay))
	copy(sections, f.Overlay)
	for i := range sections {
		if sections[i].Align == "" {
			sections[i].Align = AlignCenter
		}
	}
	Overlay.Sections = sections
	return true
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
