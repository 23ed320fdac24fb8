// Package scroll turns raw scroll input into a normalised progress signal.
//
// The scrolled region is Length viewport heights tall and the view is pinned
// while it scrolls, so the distance that maps to progress 0..1 is
// (Length-1) viewport heights.
package scroll

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TrackerOptions configure a Tracker.
type TrackerOptions struct {
	Length           float64 // region height in viewport heights, > 1
	SmoothingSeconds float64 // 0 disables smoothing
	Easing           ease.TweenFunc
}

// Tracker owns the scroll position and publishes the (smoothed) progress.
type Tracker struct {
	opts TrackerOptions

	viewportHeight float64
	target         float64 // progress the position maps to
	progress       float64 // published progress, trails target while tweening
	tween          *gween.Tween

	subs observers[func(progress float64)]
}

func NewTracker(opts TrackerOptions) *Tracker {
	if opts.Length < 1 {
		opts.Length = 1
	}
	if opts.Easing == nil {
		opts.Easing = ease.OutCubic
	}
	return &Tracker{opts: opts}
}

// Scrollable is the scroll distance in pixels that covers progress 0..1.
func (t *Tracker) Scrollable() float64 {
	return (t.opts.Length - 1) * t.viewportHeight
}

// Position is the target scroll offset in pixels.
func (t *Tracker) Position() float64 {
	return t.target * t.Scrollable()
}

// SetViewportHeight changes the viewport height. Progress is preserved, the
// pixel position is rescaled.
func (t *Tracker) SetViewportHeight(height int) {
	if height > 0 {
		t.viewportHeight = float64(height)
	}
}

// ScrollBy moves the target by dy pixels, positive is down.
func (t *Tracker) ScrollBy(dy float64) {
	s := t.Scrollable()
	if s <= 0 || dy == 0 {
		return
	}
	t.ScrollTo(t.target + dy/s)
}

// ScrollTo moves the target to progress p, clamped to [0,1].
func (t *Tracker) ScrollTo(p float64) {
	p = clamp01(p)
	if p == t.target {
		return
	}
	t.target = p

	if t.opts.SmoothingSeconds <= 0 {
		t.tween = nil
		t.publish(p)
		return
	}
	t.tween = gween.New(float32(t.progress), float32(p), float32(t.opts.SmoothingSeconds), t.opts.Easing)
}

// Update advances smoothing by dt seconds.
func (t *Tracker) Update(dt float64) {
	if t.tween == nil {
		return
	}
	v, finished := t.tween.Update(float32(dt))
	if finished {
		t.tween = nil
		t.publish(t.target)
		return
	}
	t.publish(clamp01(float64(v)))
}

func (t *Tracker) publish(p float64) {
	if p == t.progress {
		return
	}
	t.progress = p
	t.subs.each(func(fn func(float64)) {
		fn(p)
	})
}

// Progress is the published progress in [0,1].
func (t *Tracker) Progress() float64 { return t.progress }

// Target is the progress the tracker is moving towards.
func (t *Tracker) Target() float64 { return t.target }

// Settled reports whether no smoothing is in flight.
func (t *Tracker) Settled() bool { return t.tween == nil }

// Subscribe registers fn for progress changes.
func (t *Tracker) Subscribe(fn func(progress float64)) func() {
	return t.subs.add(fn)
}

func (t *Tracker) Subscribers() int {
	return t.subs.len()
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
