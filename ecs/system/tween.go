package system

import (
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
)

// TweenSystem advances LERP tweens and writes their values back.
type TweenSystem struct{}

func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

func (s *TweenSystem) Update(w *ecs.World) {
	dt := w.DeltaTime()
	ecs.ForEach2(w, component.TweensComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tweens *component.Tweens, t *component.Transform) {
		for i := range tweens.Items {
			tw := &tweens.Items[i]
			tw.Advance(dt)

			if tw.Property == component.TweenColor {
				if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
					sprite.Tint = tw.Color(sprite.Tint.A)
				}
				continue
			}

			v := tw.Value()
			switch tw.Property {
			case component.TweenPosition:
				t.X, t.Y = v.X, v.Y
			case component.TweenScale:
				// keep the facing direction
				if t.ScaleX < 0 {
					t.ScaleX = -v.X
				} else {
					t.ScaleX = v.X
				}
				t.ScaleY = v.Y
			}
		}
	})
}
