package fsm

// Clip names and flags of the knight spritesheet.
const (
	KnightIdleClip   = "idle"
	KnightRunClip    = "run"
	KnightAttackClip = "attack"

	KnightMovingVar     = "moving"
	KnightAttackTrigger = "attack"
)

type KnightState int

const (
	KnightIdle KnightState = iota
	KnightRun
	KnightAttack
)

func (s KnightState) String() string {
	switch s {
	case KnightIdle:
		return "idle"
	case KnightRun:
		return "run"
	case KnightAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Knight idles, runs while moving and swings once per attack trigger. It
// can attack from a standstill or mid-run.
type Knight struct {
	Base
	anim  Animator
	state KnightState
}

func NewKnight(anim Animator) *Knight {
	k := &Knight{anim: anim}
	k.SetState(KnightIdle)
	return k
}

func (k *Knight) State() KnightState {
	return k.state
}

func (k *Knight) StateName() string {
	return k.state.String()
}

// SetState enters state, clearing triggers and starting its clip.
func (k *Knight) SetState(state KnightState) {
	from := k.state
	k.state = state
	k.ClearTriggers()

	switch state {
	case KnightIdle:
		k.anim.PlayLoop(KnightIdleClip)
	case KnightRun:
		k.anim.PlayLoop(KnightRunClip)
	default:
		k.anim.PlayOnce(KnightAttackClip)
	}
	k.notify(from.String(), state.String())
}

func (k *Knight) Update() {
	switch k.state {
	case KnightIdle:
		if k.GetTrigger(KnightAttackTrigger) {
			k.SetState(KnightAttack)
		} else if k.GetVariable(KnightMovingVar) {
			k.SetState(KnightRun)
		}
	case KnightRun:
		if k.GetTrigger(KnightAttackTrigger) {
			k.SetState(KnightAttack)
		} else if !k.GetVariable(KnightMovingVar) {
			k.SetState(KnightIdle)
		}
	case KnightAttack:
		if !k.anim.IsDone() {
			return
		}
		if k.GetVariable(KnightMovingVar) {
			k.SetState(KnightRun)
		} else {
			k.SetState(KnightIdle)
		}
	}
}
