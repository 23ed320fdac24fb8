package scroll

// Viewport holds the window size and tells subscribers when it changes.
type Viewport struct {
	width, height int
	subs          observers[func(width, height int)]
}

func NewViewport() *Viewport {
	return &Viewport{}
}

// Set updates the size. Subscribers are only notified on an actual change;
// non-positive sizes (minimised windows) are ignored.
func (v *Viewport) Set(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == v.width && height == v.height {
		return false
	}
	v.width, v.height = width, height
	v.subs.each(func(fn func(int, int)) {
		fn(width, height)
	})
	return true
}

func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Subscribe registers fn for size changes. If a size is already known fn is
// called with it right away, so late subscribers start in sync.
func (v *Viewport) Subscribe(fn func(width, height int)) func() {
	unsub := v.subs.add(fn)
	if v.width > 0 && v.height > 0 {
		fn(v.width, v.height)
	}
	return unsub
}

func (v *Viewport) Subscribers() int {
	return v.subs.len()
}
