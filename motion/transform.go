// Package motion maps a driving value through keyframes.
package motion

// Transform maps v through piecewise-linear keyframes: in holds ascending
// input stops and out the matching output values. Values outside the input
// range clamp to the first or last output.
//
// Mismatched or empty keyframes yield 0.
func Transform(v float64, in, out []float64) float64 {
	if len(in) == 0 || len(in) != len(out) {
		return 0
	}
	if len(in) == 1 || v <= in[0] {
		return out[0]
	}
	last := len(in) - 1
	if v >= in[last] {
		return out[last]
	}

	for i := 1; i <= last; i++ {
		if v > in[i] {
			continue
		}
		span := in[i] - in[i-1]
		if span <= 0 {
			return out[i]
		}
		t := (v - in[i-1]) / span
		return out[i-1] + (out[i]-out[i-1])*t
	}
	return out[last]
}

// Keyframes pairs input stops with output values.
type Keyframes struct {
	In  []float64 `yaml:"in"`
	Out []float64 `yaml:"out"`
}

// At evaluates the keyframes at v. Empty keyframes yield def.
func (k Keyframes) At(v, def float64) float64 {
	if len(k.In) == 0 {
		return def
	}
	return Transform(v, k.In, k.Out)
}

// Valid reports whether the stops are paired and ascending.
func (k Keyframes) Valid() bool {
	if len(k.In) != len(k.Out) {
		return false
	}
	for i := 1; i < len(k.In); i++ {
		if k.In[i] < k.In[i-1] {
			return false
		}
	}
	return true
}
