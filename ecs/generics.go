package ecs

func Add[T any](w *World, e Entity, kind ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if value == nil {
		return ErrNilComponent
	}
	if !IsAlive(w, e) {
		return ErrEntityNotAlive
	}
	storeFor(w, kind, true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, kind, false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, kind, false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v := storeFor(w, kind, false).Get(e.id())
	return v, v != nil
}

// First returns the lowest-id live entity carrying kind.
func First[T any](w *World, kind ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s == nil || s.Len() == 0 {
		return NoEntity, false
	}
	for _, id := range sortedIDs(s.ids()) {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return NoEntity, false
}

// ForEach visits entities carrying kind in id order. The id list is captured
// up front so fn may add or remove components and entities.
func ForEach[T any](w *World, kind ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil || fn == nil {
		return
	}
	for _, id := range sortedIDs(s.ids()) {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		if v := s.Get(id); v != nil {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka ComponentKind[A], kb ComponentKind[B], fn func(Entity, *A, *B)) {
	sb := storeFor(w, kb, false)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b := sb.Get(e.id())
		if b == nil {
			return
		}
		fn(e, a, b)
	})
}

func ForEach3[A, B, C any](w *World, ka ComponentKind[A], kb ComponentKind[B], kc ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, kc, false)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c := sc.Get(e.id())
		if c == nil {
			return
		}
		fn(e, a, b, c)
	})
}
