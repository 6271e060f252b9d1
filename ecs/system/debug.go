package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/spritelab/common"
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
)

// DebugSystem logs state and animation events and, when enabled, prints
// each character's animation state on screen.
type DebugSystem struct {
	Enabled bool
}

func NewDebugSystem() *DebugSystem {
	return &DebugSystem{}
}

func (d *DebugSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Peek() {
		switch data := evt.Data.(type) {
		case ecs.StateChangedEvent:
			common.LogDebug("state changed", "entity", entityLabel(w, data.Entity), "from", data.From, "to", data.To)
		case ecs.AnimationFinishedEvent:
			common.LogDebug("animation finished", "entity", entityLabel(w, data.Entity), "clip", data.Clip)
		}
	}
}

func (d *DebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || !d.Enabled || w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrint(screen, DebugText(w, ebiten.ActualFPS()))
}

// DebugText renders the overlay contents.
func DebugText(w *ecs.World, fps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %0.1f\n", fps)

	for _, e := range w.Query(component.AnimFSMComponent.Kind()) {
		f, _ := ecs.Get(w, e, component.AnimFSMComponent.Kind())
		if f.Machine == nil {
			continue
		}
		fmt.Fprintf(&b, "%s: %s", entityLabel(w, e), f.Machine.StateName())
		if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
			fmt.Fprintf(&b, " [%s %d]", anim.Current(), anim.Frame())
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func entityLabel(w *ecs.World, e ecs.Entity) string {
	if name, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && name.Value != "" {
		return name.Value
	}
	return e.String()
}
