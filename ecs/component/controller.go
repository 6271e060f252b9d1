package component

import "github.com/hajimehoshi/ebiten/v2"

// Controller moves an entity left and right from two keys and mirrors the
// movement into a boolean FSM variable.
type Controller struct {
	Left     ebiten.Key
	Right    ebiten.Key
	Speed    float64
	Variable string
}

var ControllerComponent = NewComponent[Controller]()
