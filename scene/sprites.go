package scene

import (
	"fmt"

	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
	"github.com/milk9111/spritelab/fsm"
	"github.com/milk9111/spritelab/ui"
)

const (
	SpritesName = "sprites"

	explosionEntity = "explosion"
	knightEntity    = "knight"
	warriorEntity   = "warrior"

	boomClip  = "boom"
	boomSound = "boom"
)

// SpritesScene shows an explosion, a knight and a warrior driven by
// keyboard input and an actions panel.
type SpritesScene struct {
	*layoutScene
}

func NewSpritesScene(deps Deps) (*SpritesScene, error) {
	base, err := newLayoutScene(SpritesName, "sprites.yaml", deps)
	if err != nil {
		return nil, err
	}
	s := &SpritesScene{layoutScene: base}
	s.panel = ui.NewActionsPanel(s.title, []ui.Action{
		{Label: "Boom!", Do: s.Boom},
		{Label: "Attack!", Do: s.Attack},
		{Label: "Warrior Attack!", Do: s.WarriorAttack},
	})
	return s, nil
}

// Boom plays the explosion clip once, restarting it if it is mid-play.
func (s *SpritesScene) Boom() error {
	e, ok := s.Entity(explosionEntity)
	if !ok {
		return fmt.Errorf("no %s entity", explosionEntity)
	}
	anim, ok := ecs.Get(s.world, e, component.AnimatorComponent.Kind())
	if !ok || !anim.PlayOnce(boomClip) {
		return fmt.Errorf("%s cannot play %q", explosionEntity, boomClip)
	}
	if sound, ok := ecs.Get(s.world, e, component.AudioComponent.Kind()); ok {
		sound.Request(boomSound)
	}
	return nil
}

// Attack raises the knight's attack trigger.
func (s *SpritesScene) Attack() error {
	return s.trigger(knightEntity, fsm.KnightAttackTrigger)
}

// WarriorAttack raises the warrior's attack trigger.
func (s *SpritesScene) WarriorAttack() error {
	return s.trigger(warriorEntity, fsm.WarriorAttackTrigger)
}

func (s *SpritesScene) trigger(name, trigger string) error {
	e, ok := s.Entity(name)
	if !ok {
		return fmt.Errorf("no %s entity", name)
	}
	f, ok := ecs.Get(s.world, e, component.AnimFSMComponent.Kind())
	if !ok || f.Machine == nil {
		return fmt.Errorf("%s has no state machine", name)
	}
	f.Machine.SetTrigger(trigger)
	return nil
}
