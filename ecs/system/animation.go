package system

import (
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.AnimatorComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animator, sprite *component.Sprite) {
		if anim.Update(dt) {
			w.Events().Push(ecs.Event{
				Type: ecs.EventAnimationFinished,
				Data: ecs.AnimationFinishedEvent{Entity: e, Clip: anim.Current()},
			})
		}

		if anim.Sheet == nil {
			return
		}
		if anim.Sheet.Image != nil {
			sprite.Image = anim.Sheet.Image
		}
		sprite.Source = anim.Sheet.FrameRect(anim.Frame())
		sprite.UseSource = true
	})
}
