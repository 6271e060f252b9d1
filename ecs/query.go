package ecs

import (
	"sort"

	"github.com/milk9111/spritelab/ecs/component"
)

// Query returns the live entities carrying every kind, ordered by slot.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.lookup(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	sort.Slice(stores, func(i, j int) bool { return stores[i].Len() < stores[j].Len() })

	out := make([]Entity, 0, stores[0].Len())
	for _, e := range stores[0].denseEntities {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, s := range stores[1:] {
			if !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-slot live entity carrying kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	entities := w.Query(kind)
	if len(entities) == 0 {
		return 0, false
	}
	return entities[0], true
}
