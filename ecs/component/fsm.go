package component

import "github.com/milk9111/spritelab/fsm"

// AnimFSM attaches an animation state machine to an entity.
type AnimFSM struct {
	Kind    string
	Machine fsm.Machine
}

var AnimFSMComponent = NewComponent[AnimFSM]()
