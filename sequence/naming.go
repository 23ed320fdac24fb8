package sequence

import "fmt"

// DefaultPattern is the file name of a frame asset. The index is zero-padded
// to three digits, so index 6 becomes "frame_006_delay-0.04s.webp".
const DefaultPattern = "frame_%03d_delay-0.04s.webp"

// FrameName returns the asset name of frame index for the given pattern.
func FrameName(pattern string, index int) string {
	return fmt.Sprintf(pattern, index)
}

// ExpectedCount is the number of frames fetched for a sequence of total
// frames sampled every step frames.
func ExpectedCount(total, step int) int {
	if total < 1 || step < 1 {
		return 0
	}
	return (total-1)/step + 1
}

// Indices lists the fetched frame indices in ascending order: 0, step, 2*step, ...
func Indices(total, step int) []int {
	n := ExpectedCount(total, step)
	if n == 0 {
		return nil
	}
	out := make([]int, 0, n)
	for i := 0; i < total; i += step {
		out = append(out, i)
	}
	return out
}
