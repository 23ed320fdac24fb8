// Package wrap breaks copy into lines that fit a width.
package wrap

import "strings"

// Lines greedily packs the words of s into lines no wider than maxWidth as
// reported by measure. A single word wider than maxWidth gets its own line.
// Explicit newlines are kept. maxWidth <= 0 disables wrapping.
func Lines(s string, maxWidth float64, measure func(string) float64) []string {
	if s == "" {
		return nil
	}
	if maxWidth <= 0 {
		return strings.Split(s, "\n")
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			out = append(out, line)
			line = w
		}
		out = append(out, line)
	}
	return out
}
