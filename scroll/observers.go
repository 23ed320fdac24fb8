package scroll

// observers keeps subscribers in registration order. Each subscription can be
// released once; further calls to its unsubscribe func do nothing.
type observers[T any] struct {
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn T
}

func (o *observers[T]) add(fn T) func() {
	id := o.nextID
	o.nextID++
	o.subs = append(o.subs, subscriber[T]{id: id, fn: fn})

	released := false
	return func() {
		if released {
			return
		}
		released = true
		for i, s := range o.subs {
			if s.id == id {
				o.subs = append(o.subs[:i], o.subs[i+1:]...)
				return
			}
		}
	}
}

func (o *observers[T]) each(call func(fn T)) {
	// Copy so a subscriber may unsubscribe while being notified.
	subs := append([]subscriber[T](nil), o.subs...)
	for _, s := range subs {
		call(s.fn)
	}
}

func (o *observers[T]) len() int {
	return len(o.subs)
}
