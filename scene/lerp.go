package scene

import (
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
	"github.com/milk9111/spritelab/ui"
)

const LerpName = "lerp"

// LerpScene ping-pongs a duck and a bird between two positions, colours and
// scales.
type LerpScene struct {
	*layoutScene
}

func NewLerpScene(deps Deps) (*LerpScene, error) {
	base, err := newLayoutScene(LerpName, "lerp.yaml", deps)
	if err != nil {
		return nil, err
	}
	s := &LerpScene{layoutScene: base}
	s.panel = ui.NewActionsPanel(s.title, []ui.Action{
		{Label: "Restart", Do: s.Reload},
		{Label: "Reverse", Do: s.Reverse},
	})
	return s, nil
}

// Reverse flips the direction of every tween mid-leg, keeping its current
// value.
func (s *LerpScene) Reverse() error {
	ecs.ForEach(s.world, component.TweensComponent.Kind(), func(_ ecs.Entity, tweens *component.Tweens) {
		for i := range tweens.Items {
			tw := &tweens.Items[i]
			// At a leg boundary the value already sits on an endpoint.
			if tw.Timer <= 0 || tw.Timer >= tw.Duration {
				continue
			}
			tw.Forward = !tw.Forward
			tw.Timer = tw.Duration - tw.Timer
		}
	})
	return nil
}
