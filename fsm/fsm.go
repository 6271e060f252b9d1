// Package fsm holds the animation state machines that pick which sprite clip
// a character plays. A machine reads boolean variables (held until changed)
// and triggers (one-shot flags cleared on every state change).
package fsm

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownKind = errors.New("fsm: unknown machine kind")

// Animator is the sprite playback surface a machine drives.
type Animator interface {
	PlayLoop(clip string) bool
	PlayOnce(clip string) bool
	IsDone() bool
}

// Machine is an animation state machine attached to one character.
type Machine interface {
	Update()
	StateName() string
	SetVariable(name string, value bool)
	GetVariable(name string) bool
	SetTrigger(name string)
	GetTrigger(name string) bool
	SetOnStateChange(fn func(from, to string))
}

// Base stores the variables and triggers shared by every machine.
type Base struct {
	variables     map[string]bool
	triggers      map[string]bool
	onStateChange func(from, to string)
}

// SetVariable stores a boolean that persists until it is set again.
func (b *Base) SetVariable(name string, value bool) {
	if b.variables == nil {
		b.variables = make(map[string]bool)
	}
	b.variables[name] = value
}

// GetVariable returns the named variable, false when never set.
func (b *Base) GetVariable(name string) bool {
	return b.variables[name]
}

// SetTrigger raises a one-shot flag.
func (b *Base) SetTrigger(name string) {
	if b.triggers == nil {
		b.triggers = make(map[string]bool)
	}
	b.triggers[name] = true
}

// GetTrigger reports whether the named trigger is raised.
func (b *Base) GetTrigger(name string) bool {
	return b.triggers[name]
}

// ClearTriggers lowers every trigger.
func (b *Base) ClearTriggers() {
	clear(b.triggers)
}

// SetOnStateChange registers a callback invoked after each transition.
func (b *Base) SetOnStateChange(fn func(from, to string)) {
	b.onStateChange = fn
}

func (b *Base) notify(from, to string) {
	if b.onStateChange != nil && from != to {
		b.onStateChange(from, to)
	}
}

type constructor func(anim Animator) Machine

var kinds = map[string]constructor{
	"knight":  func(anim Animator) Machine { return NewKnight(anim) },
	"warrior": func(anim Animator) Machine { return NewWarrior(anim) },
}

// New builds the machine registered under kind.
func New(kind string, anim Animator) (Machine, error) {
	ctor, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownKind, kind, Kinds())
	}
	if anim == nil {
		return nil, fmt.Errorf("fsm: %s: animator is nil", kind)
	}
	return ctor(anim), nil
}

// Kinds lists the registered machine kinds.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
