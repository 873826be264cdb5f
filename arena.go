package glide

// handle identifies a slot in an arena. The generation guards against a
// stale handle addressing a slot that has since been reused.
type handle struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// arena stores values behind stable handles and iterates them in insertion
// order. Removal during iteration is allowed: removed entries are skipped
// and entries added mid-iteration are not visited until the next pass.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	order []uint32
	iter  []handle

	iterating bool
}

func (a *arena[T]) add(v T) handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	s.value = v
	s.live = true
	a.order = append(a.order, idx)
	return handle{index: idx, gen: s.gen}
}

func (a *arena[T]) get(h handle) (*T, bool) {
	if int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return &s.value, true
}

func (a *arena[T]) remove(h handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.live = false
	a.free = append(a.free, h.index)
	for i, idx := range a.order {
		if idx == h.index {
			copy(a.order[i:], a.order[i+1:])
			a.order = a.order[:len(a.order)-1]
			break
		}
	}
	return true
}

func (a *arena[T]) len() int {
	return len(a.order)
}

// each calls fn for every live value in insertion order. The order is
// snapshotted first so fn may add or remove entries.
func (a *arena[T]) each(fn func(h handle, v *T)) {
	var snapshot []handle
	if a.iterating {
		// Re-entrant pass: the shared buffer belongs to the outer loop.
		snapshot = a.handles(nil)
	} else {
		a.iter = a.handles(a.iter[:0])
		snapshot = a.iter
		a.iterating = true
		defer func() { a.iterating = false }()
	}
	for _, h := range snapshot {
		v, ok := a.get(h)
		if !ok {
			continue
		}
		fn(h, v)
	}
}

func (a *arena[T]) handles(dst []handle) []handle {
	for _, idx := range a.order {
		dst = append(dst, handle{index: idx, gen: a.slots[idx].gen})
	}
	return dst
}

// clear removes every entry and returns the values that were live, in
// insertion order.
func (a *arena[T]) clear() []T {
	out := make([]T, 0, len(a.order))
	for _, idx := range a.order {
		out = append(out, a.slots[idx].value)
	}
	for len(a.order) > 0 {
		idx := a.order[len(a.order)-1]
		a.remove(handle{index: idx, gen: a.slots[idx].gen})
	}
	return out
}
