package sequence

import "math"

// Rect is a destination rectangle on the drawing surface, in pixels.
// X and Y may be negative when the frame is cropped.
type Rect struct {
	X, Y float64
	W, H float64
}

// ClampProgress limits p to [0,1]. NaN maps to 0.
func ClampProgress(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FrameIndex maps a progress value to a logical frame in [0, total-1].
func FrameIndex(progress float64, total int) int {
	if total <= 1 {
		return 0
	}
	i := int(math.Floor(ClampProgress(progress) * float64(total-1)))
	if i < 0 {
		return 0
	}
	if i > total-1 {
		return total - 1
	}
	return i
}

// EffectiveIndex is the nearest fetched frame at or below frameIndex.
func EffectiveIndex(frameIndex, step int) int {
	if step < 1 {
		step = 1
	}
	if frameIndex < 0 {
		return 0
	}
	return (frameIndex / step) * step
}

// CoverFit scales an iw x ih image uniformly so that it fills a cw x ch
// surface, centering the overflow. ok is false when any dimension is not
// positive.
func CoverFit(iw, ih, cw, ch float64) (r Rect, ok bool) {
	if iw <= 0 || ih <= 0 || cw <= 0 || ch <= 0 {
		return Rect{}, false
	}

	imgRatio := iw / ih
	canvasRatio := cw / ch

	if canvasRatio > imgRatio {
		r.W = cw
		r.H = cw / imgRatio
		r.X = 0
		r.Y = (ch - r.H) / 2
	} else {
		r.W = ch * imgRatio
		r.H = ch
		r.X = (cw - r.W) / 2
		r.Y = 0
	}
	return r, true
}
