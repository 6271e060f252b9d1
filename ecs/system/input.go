package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
)

// InputSystem turns controller keys into movement and FSM variables.
type InputSystem struct {
	KeyPressed func(ebiten.Key) bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{KeyPressed: ebiten.IsKeyPressed}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.KeyPressed == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach3(w, component.ControllerComponent.Kind(), component.AnimFSMComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, ctrl *component.Controller, f *component.AnimFSM, t *component.Transform) {
			left := i.KeyPressed(ctrl.Left)
			right := i.KeyPressed(ctrl.Right)
			moving := left || right

			if f.Machine != nil && ctrl.Variable != "" {
				f.Machine.SetVariable(ctrl.Variable, moving)
			}
			if !moving {
				return
			}

			scale := math.Abs(t.ScaleX)
			if scale == 0 {
				scale = 1
			}
			// left wins when both keys are held
			if left {
				t.ScaleX = -scale
				t.X -= ctrl.Speed * dt
			} else {
				t.ScaleX = scale
				t.X += ctrl.Speed * dt
			}
		})
}
