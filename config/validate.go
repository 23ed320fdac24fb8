package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the global configuration and reports every problem found.
func Validate() error {
	var errs []error

	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", C.Width, C.Height))
	}
	if Sequence.TotalFrames < 1 {
		errs = append(errs, fmt.Errorf("total frames %d must be at least 1", Sequence.TotalFrames))
	}
	if Sequence.Step < 1 {
		errs = append(errs, fmt.Errorf("step %d must be at least 1", Sequence.Step))
	}
	if err := ValidatePattern(Sequence.Pattern); err != nil {
		errs = append(errs, err)
	}
	if Sequence.MaxFrameWidth < 0 || Sequence.MaxFrameHeight < 0 {
		errs = append(errs, errors.New("max frame size must not be negative"))
	}
	if Scroll.Length <= 1 {
		errs = append(errs, fmt.Errorf("scroll length %v must be greater than 1", Scroll.Length))
	}
	if Scroll.SmoothingSeconds < 0 {
		errs = append(errs, errors.New("scroll smoothing must not be negative"))
	}
	if err := ValidateSections(Overlay.Sections); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}

// ValidatePattern requires exactly one zero-padded three digit index verb.
func ValidatePattern(pattern string) error {
	if strings.Count(pattern, "%") != 1 || strings.Count(pattern, "%03d") != 1 {
		return fmt.Errorf("frame pattern %q must contain exactly one %%03d", pattern)
	}
	return nil
}

// ValidateSections checks alignment and keyframes of overlay sections. An
// empty align is accepted and means center.
func ValidateSections(sections []OverlaySection) error {
	var errs []error
	for i, s := range sections {
		switch s.Align {
		case "", AlignCenter, AlignLeft, AlignRight:
		default:
			errs = append(errs, fmt.Errorf("overlay section %d: unknown align %q", i, s.Align))
		}
		if !s.Y.Valid() {
			errs = append(errs, fmt.Errorf("overlay section %d: invalid y keyframes", i))
		}
		if !s.Opacity.Valid() {
			errs = append(errs, fmt.Errorf("overlay section %d: invalid opacity keyframes", i))
		}
	}
	return errors.Join(errs...)
}
