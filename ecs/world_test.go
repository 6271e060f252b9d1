package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/spritelab/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"none_destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("destroying twice should fail")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d live entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestEntitySlotReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh.generation() == old.generation() {
		t.Fatalf("reused slot must have a new generation")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("components must not leak into a reused slot")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

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
			setup: func() error { return Add(w, e1, ints.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints.Kind()) {
					t.Fatalf("e2 should not have an int")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints.Kind()) },
		},
		{
			name: "add_str_to_both",
			setup: func() error {
				if err := Add(w, e1, strs.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs.Kind()) || !Has(w, e2, strs.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, strs.Kind()) },
		},
		{
			name:  "replace_value",
			setup: func() error { return Add(w, e2, strs.Kind(), stringPtr("c")) },
			check: func(t *testing.T) {
				v, _ := Get(w, e2, strs.Kind())
				if v == nil || *v != "c" {
					t.Fatalf("expected replaced value c, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, strs.Kind()) },
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

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add[int](w, e, component.NewComponentKind[int](), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatal(err)
	}

	seen := map[Entity]int{}
	ForEach(w, h.Kind(), func(e Entity, v *int) { seen[e] = *v })

	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected ForEach result %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection_in_slot_order",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				ents := []Entity{CreateEntity(w), CreateEntity(w), CreateEntity(w), CreateEntity(w)}

				// add in reverse so dense order differs from slot order
				for i := len(ents) - 1; i >= 0; i-- {
					if err := Add(w, ents[i], ka, intPtr(i)); err != nil {
						t.Fatal(err)
					}
				}
				for _, i := range []int{3, 1} {
					if err := Add(w, ents[i], kb, intPtr(i)); err != nil {
						t.Fatal(err)
					}
				}

				got := w.Query(ka, kb)
				if len(got) != 2 || got[0] != ents[1] || got[1] != ents[3] {
					t.Fatalf("expected [e1 e3], got %v", got)
				}
			},
		},
		{
			name: "missing_store_returns_nil",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				if err := Add(w, CreateEntity(w), ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if got := w.Query(ka, kb); len(got) != 0 {
					t.Fatalf("expected no results, got %v", got)
				}
			},
		},
		{
			name: "first",
			run: func(t *testing.T) {
				w := NewWorld()
				ka := component.NewComponentKind[int]()
				if _, ok := w.First(ka); ok {
					t.Fatalf("expected no entity")
				}
				CreateEntity(w)
				e := CreateEntity(w)
				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				got, ok := w.First(ka)
				if !ok || got != e {
					t.Fatalf("expected %v, got %v ok=%v", e, got, ok)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach3(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()

	for _, add := range []struct {
		e    Entity
		kind component.ComponentKind[int]
	}{{e1, ka}, {e2, ka}, {e2, kb}, {e2, kc}, {e3, kb}, {e3, kc}} {
		if err := Add(w, add.e, add.kind, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}

	var res []Entity
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	DestroyEntity(w, e2)
	res = nil
	ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", res)
	}
}

type recordingSystem struct {
	name  string
	order *[]string
	push  bool
}

func (r recordingSystem) Update(w *World) {
	*r.order = append(*r.order, r.name)
	if r.push {
		w.Events().Push(Event{Type: EventStateChanged, Data: StateChangedEvent{From: "idle", To: "run"}})
	}
}

func TestSchedulerRunsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen int

	s := NewScheduler(
		recordingSystem{name: "a", order: &order, push: true},
		nil,
		recordingSystem{name: "b", order: &order},
	)
	s.Add(systemFunc(func(w *World) { seen = len(w.Events().Peek()) }))
	s.Update(w)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
	if seen != 1 {
		t.Fatalf("later systems should see the event, saw %d", seen)
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("events should be flushed after the update")
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func TestDeltaTime(t *testing.T) {
	w := NewWorld()
	w.SetDeltaTime(1.0 / 60)
	if w.DeltaTime() != 1.0/60 {
		t.Fatalf("unexpected dt %v", w.DeltaTime())
	}
	w.SetDeltaTime(-1)
	if w.DeltaTime() != 0 {
		t.Fatalf("negative dt should clamp to 0")
	}
}
