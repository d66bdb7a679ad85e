package ecs

import "testing"

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestStaleHandleAfterRecycle(t *testing.T) {
	w := NewWorld()
	kind := NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, fresh)
	}
	if fresh == old {
		t.Fatalf("recycled handle must carry a new generation")
	}
	if _, ok := Get(w, old, kind); ok {
		t.Fatalf("stale handle must not resolve")
	}
	if _, ok := Get(w, fresh, kind); ok {
		t.Fatalf("components of the destroyed entity must not leak into the new one")
	}
	if err := Add(w, old, kind, intPtr(2)); err != ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	hInt := NewComponent[int]()
	hStr := NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, hInt.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, hInt.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, hInt.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, hStr.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, hStr.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, hStr.Kind()) || !Has(w, e2, hStr.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, hStr.Kind()) },
		},
		{
			name:  "nil_value_rejected",
			setup: func() error { return nil },
			check: func(t *testing.T) {
				if err := Add(w, e1, hInt.Kind(), nil); err != ErrNilComponent {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
			},
			teardown: func() bool { return true },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3] in id order, got %v (e2=%v)", ents, e2)
	}

	first, ok := First(w, h.Kind())
	if !ok || first != e1 {
		t.Fatalf("expected First to return e1, got %v ok=%v", first, ok)
	}
}

func TestForEachAllowsDestroy(t *testing.T) {
	w := NewWorld()
	h := NewComponent[int]()
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		visited++
		if *v%2 == 0 {
			DestroyEntity(w, e)
		}
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if got := len(Entities(w)); got != 2 {
		t.Fatalf("expected 2 survivors, got %d", got)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := NewComponentKind[int]()
				kb := NewComponentKind[int]()
				kc := NewComponentKind[int]()

				for _, step := range []struct {
					e    Entity
					kind ComponentKind[int]
				}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}} {
					if err := Add(w, step.e, step.kind, intPtr(1)); err != nil {
						t.Fatal(err)
					}
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := NewComponentKind[int]()
				kb := NewComponentKind[int]()
				kc := NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct{ calls int }

func (s *countingSystem) Update(w *World) {
	s.calls++
	w.Events().Push(Event{Type: "tick"})
}

func TestSchedulerAdvancesTickAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	sched := NewScheduler(sys, nil)

	sched.Update(w)
	sched.Update(w)

	if sys.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", sys.calls)
	}
	if w.Tick() != 2 {
		t.Fatalf("expected tick 2, got %d", w.Tick())
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("expected events flushed after pass, got %v", evts)
	}
	if len(sched.Systems()) != 1 {
		t.Fatalf("nil systems must be ignored")
	}
}
