package system

import (
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
)

// FSMSystem steps every animation state machine once per frame.
type FSMSystem struct{}

func NewFSMSystem() *FSMSystem {
	return &FSMSystem{}
}

func (s *FSMSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AnimFSMComponent.Kind(), func(_ ecs.Entity, f *component.AnimFSM) {
		if f.Machine != nil {
			f.Machine.Update()
		}
	})
}
