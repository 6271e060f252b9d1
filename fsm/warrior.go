package fsm

// Clip names and flags of the warrior spritesheet.
const (
	WarriorIdleClip   = "idle1"
	WarriorRunClip    = "walk1"
	WarriorAttackClip = "attack1"

	WarriorMovingVar     = "moving1"
	WarriorAttackTrigger = "attack1"
)

type WarriorState int

const (
	WarriorIdle WarriorState = iota
	WarriorRun
	WarriorAttack
)

func (s WarriorState) String() string {
	switch s {
	case WarriorIdle:
		return "idle"
	case WarriorRun:
		return "run"
	case WarriorAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Warrior only attacks from a standstill. Moving in the same frame as an
// attack request wins, and an attack holds its last frame until the warrior
// stops moving.
type Warrior struct {
	Base
	anim  Animator
	state WarriorState
}

func NewWarrior(anim Animator) *Warrior {
	w := &Warrior{anim: anim}
	w.SetState(WarriorIdle)
	return w
}

func (w *Warrior) State() WarriorState {
	return w.state
}

func (w *Warrior) StateName() string {
	return w.state.String()
}

// SetState enters state, clearing triggers and starting its clip.
func (w *Warrior) SetState(state WarriorState) {
	from := w.state
	w.state = state
	w.ClearTriggers()

	switch state {
	case WarriorIdle:
		w.anim.PlayLoop(WarriorIdleClip)
	case WarriorRun:
		w.anim.PlayLoop(WarriorRunClip)
	default:
		w.anim.PlayOnce(WarriorAttackClip)
	}
	w.notify(from.String(), state.String())
}

func (w *Warrior) Update() {
	switch w.state {
	case WarriorIdle:
		if w.GetVariable(WarriorMovingVar) {
			w.SetState(WarriorRun)
		}
		// SetState cleared the trigger if we just started running.
		if w.GetTrigger(WarriorAttackTrigger) {
			w.SetState(WarriorAttack)
		}
	case WarriorRun:
		if !w.GetVariable(WarriorMovingVar) {
			w.SetState(WarriorIdle)
		}
	case WarriorAttack:
		if !w.GetVariable(WarriorMovingVar) && w.anim.IsDone() {
			w.SetState(WarriorIdle)
		}
	}
}
