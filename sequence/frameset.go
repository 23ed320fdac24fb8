package sequence

import (
	"image"
	"math"
)

// Frame is a decoded still image. *ebiten.Image and image.Image both satisfy it.
type Frame interface {
	Bounds() image.Rectangle
}

// SlotState is the load state of one frame slot.
type SlotState uint8

const (
	// SlotSkipped marks indices that are never fetched (not a multiple of step).
	SlotSkipped SlotState = iota
	SlotPending
	SlotLoaded
	SlotUnavailable
)

func (s SlotState) String() string {
	switch s {
	case SlotPending:
		return "pending"
	case SlotLoaded:
		return "loaded"
	case SlotUnavailable:
		return "unavailable"
	default:
		return "skipped"
	}
}

// FrameSet is the frame table of a sequence. Each fetched slot moves from
// pending to loaded or unavailable exactly once and never changes again.
type FrameSet struct {
	total, step int
	states      []SlotState
	frames      []Frame
	expected    int
	completed   int
	failed      int
}

// NewFrameSet allocates a table of total slots, marking every step-th index
// pending. It panics when total or step is below 1.
func NewFrameSet(total, step int) *FrameSet {
	if total < 1 || step < 1 {
		panic("sequence: frame set needs total >= 1 and step >= 1")
	}
	fs := &FrameSet{
		total:  total,
		step:   step,
		states: make([]SlotState, total),
		frames: make([]Frame, total),
	}
	for _, i := range Indices(total, step) {
		fs.states[i] = SlotPending
		fs.expected++
	}
	return fs
}

// Resolve records the outcome of fetching index. A nil frame or a non-nil err
// marks the slot unavailable. It returns false, changing nothing, when the
// index is out of range, not fetched, or already resolved.
func (fs *FrameSet) Resolve(index int, frame Frame, err error) bool {
	if index < 0 || index >= fs.total || fs.states[index] != SlotPending {
		return false
	}
	if err != nil || frame == nil {
		fs.states[index] = SlotUnavailable
		fs.failed++
	} else {
		fs.states[index] = SlotLoaded
		fs.frames[index] = frame
	}
	fs.completed++
	return true
}

// Lookup returns the frame at effective if it is loaded, otherwise the
// nearest loaded fetched frame below it. at is the index actually returned.
func (fs *FrameSet) Lookup(effective int) (frame Frame, at int, ok bool) {
	if effective >= fs.total {
		effective = fs.total - 1
	}
	for i := EffectiveIndex(effective, fs.step); i >= 0; i -= fs.step {
		if fs.states[i] == SlotLoaded {
			return fs.frames[i], i, true
		}
	}
	return nil, -1, false
}

func (fs *FrameSet) State(index int) SlotState {
	if index < 0 || index >= fs.total {
		return SlotSkipped
	}
	return fs.states[index]
}

func (fs *FrameSet) Total() int     { return fs.total }
func (fs *FrameSet) Step() int      { return fs.step }
func (fs *FrameSet) Expected() int  { return fs.expected }
func (fs *FrameSet) Completed() int { return fs.completed }
func (fs *FrameSet) Failed() int    { return fs.failed }

// Complete reports whether every expected fetch has resolved.
func (fs *FrameSet) Complete() bool {
	return fs.completed >= fs.expected
}

// Percent is round(completed / expected * 100).
func (fs *FrameSet) Percent() int {
	if fs.expected == 0 {
		return 100
	}
	return int(math.Round(float64(fs.completed) / float64(fs.expected) * 100))
}
