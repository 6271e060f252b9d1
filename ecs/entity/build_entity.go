package entity

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/spritelab/assets"
	"github.com/milk9111/spritelab/common"
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/component"
	"github.com/milk9111/spritelab/fsm"
	"github.com/milk9111/spritelab/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var (
	loadImage       = assets.LoadImage
	loadAudioPlayer = assets.LoadAudioPlayer
)

// SetLoaders replaces how prefab images and sounds are loaded and returns a
// func restoring the previous loaders. Nil leaves a loader unchanged.
func SetLoaders(image func(string) (*ebiten.Image, error), sound func(string) (*audio.Player, error)) (restore func()) {
	oldImage, oldSound := loadImage, loadAudioPlayer
	if image != nil {
		loadImage = image
	}
	if sound != nil {
		loadAudioPlayer = sound
	}
	return func() {
		loadImage, loadAudioPlayer = oldImage, oldSound
	}
}

var componentRegistry = map[string]componentBuildFn{
	"name":          addName,
	"camera_tag":    addCameraTag,
	"character_tag": addCharacterTag,
	"transform":     addTransform,
	"spritesheet":   addSpritesheet,
	"sprite":        addSprite,
	"animator":      addAnimator,
	"fsm":           addFSM,
	"controller":    addController,
	"tween":         addTween,
	"tweens":        addTweens,
	"audio":         addAudio,
	"camera":        addCamera,
	"render_layer":  addRenderLayer,
}

// sprite and animator read the spritesheet; fsm drives the animator.
var componentBuildOrder = []string{
	"name",
	"camera_tag",
	"character_tag",
	"transform",
	"spritesheet",
	"sprite",
	"animator",
	"fsm",
	"controller",
	"tween",
	"tweens",
	"audio",
	"camera",
	"render_layer",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

// BuildEntityFromSpec creates an entity from an already decoded prefab.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components)+1)
	for k, v := range spec.Components {
		remaining[k] = v
	}
	if _, ok := remaining["name"]; !ok && spec.Name != "" {
		remaining["name"] = spec.Name
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, names[0])
	}

	return e, nil
}

func addName(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	name, ok := raw.(string)
	if !ok {
		return fmt.Errorf("name must be a string, got %T", raw)
	}
	return ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addCharacterTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CharacterTagComponent.Kind(), &component.CharacterTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spritesheetSpec = prefabs.SpritesheetComponentSpec

func addSpritesheet(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spritesheetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spritesheet spec: %w", err)
	}
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return fmt.Errorf("spritesheet frame size must be positive, got %dx%d", spec.FrameW, spec.FrameH)
	}

	var img *ebiten.Image
	if spec.Image != "" {
		img, err = loadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load spritesheet %q: %w", spec.Image, err)
		}
	}

	sheet := component.NewSpritesheet(img, spec.FrameW, spec.FrameH)
	if spec.Columns > 0 {
		sheet.Columns = spec.Columns
	}
	for _, clip := range spec.Clips {
		if clip.Name == "" {
			return fmt.Errorf("spritesheet clip without a name")
		}
		if clip.End < clip.Begin {
			return fmt.Errorf("clip %q ends before it begins (%d..%d)", clip.Name, clip.Begin, clip.End)
		}
		sheet.AddAnimation(clip.Name, clip.Begin, clip.End, clip.FPS)
	}
	sheet.SetDefaultFrame(spec.DefaultFrame)

	return ecs.Add(w, e, component.SpritesheetComponent.Kind(), sheet)
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{Tint: spec.Tint.Tint()}
	sheet, hasSheet := ecs.Get(w, e, component.SpritesheetComponent.Kind())

	if hasSheet && (spec.Image == "" || sheet.Image != nil) {
		sprite.Image = sheet.Image
		sprite.Source = sheet.FrameRect(sheet.DefaultFrame)
		sprite.UseSource = true
	} else if spec.Image != "" {
		img, err := loadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if spec.CenterOrigin {
		switch {
		case hasSheet:
			sprite.OriginX = float64(sheet.FrameW) / 2
			sprite.OriginY = float64(sheet.FrameH) / 2
		case sprite.Image != nil:
			b := sprite.Image.Bounds()
			sprite.OriginX = float64(b.Dx()) / 2
			sprite.OriginY = float64(b.Dy()) / 2
		}
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type animatorSpec = prefabs.AnimatorComponentSpec

func addAnimator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animator spec: %w", err)
	}
	sheet, ok := ecs.Get(w, e, component.SpritesheetComponent.Kind())
	if !ok {
		return fmt.Errorf("animator requires a spritesheet on the same entity")
	}

	anim := component.NewAnimator(sheet)
	if spec.Play != "" {
		var started bool
		switch spec.Mode {
		case "", "loop":
			started = anim.PlayLoop(spec.Play)
		case "once":
			started = anim.PlayOnce(spec.Play)
		default:
			return fmt.Errorf("unknown animator mode %q", spec.Mode)
		}
		if !started {
			return fmt.Errorf("animator clip %q is not on the spritesheet", spec.Play)
		}
	}

	return ecs.Add(w, e, component.AnimatorComponent.Kind(), anim)
}

type fsmSpec = prefabs.FSMComponentSpec

func addFSM(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[fsmSpec](raw)
	if err != nil {
		return fmt.Errorf("decode fsm spec: %w", err)
	}
	anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind())
	if !ok {
		return fmt.Errorf("fsm requires an animator on the same entity")
	}

	machine, err := fsm.New(spec.Kind, anim)
	if err != nil {
		return err
	}
	machine.SetOnStateChange(func(from, to string) {
		w.Events().Push(ecs.Event{
			Type: ecs.EventStateChanged,
			Data: ecs.StateChangedEvent{Entity: e, From: from, To: to},
		})
	})

	return ecs.Add(w, e, component.AnimFSMComponent.Kind(), &component.AnimFSM{Kind: spec.Kind, Machine: machine})
}

type controllerSpec = prefabs.ControllerComponentSpec

func addController(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[controllerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode controller spec: %w", err)
	}

	var left, right ebiten.Key
	if err := left.UnmarshalText([]byte(spec.Left)); err != nil {
		return fmt.Errorf("controller left key: %w", err)
	}
	if err := right.UnmarshalText([]byte(spec.Right)); err != nil {
		return fmt.Errorf("controller right key: %w", err)
	}

	return ecs.Add(w, e, component.ControllerComponent.Kind(), &component.Controller{
		Left:     left,
		Right:    right,
		Speed:    spec.Speed,
		Variable: spec.Variable,
	})
}

type tweenSpec = prefabs.TweenComponentSpec

func addTween(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	return addTweens(w, e, []any{raw}, ctx)
}

func addTweens(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	specs, err := prefabs.DecodeComponentSpec[[]tweenSpec](raw)
	if err != nil {
		return fmt.Errorf("decode tweens spec: %w", err)
	}

	tweens, ok := ecs.Get(w, e, component.TweensComponent.Kind())
	if !ok {
		tweens = &component.Tweens{}
	}
	for i, spec := range specs {
		tw, err := buildTween(spec)
		if err != nil {
			return fmt.Errorf("tween %d: %w", i, err)
		}
		tweens.Items = append(tweens.Items, tw)
	}

	return ecs.Add(w, e, component.TweensComponent.Kind(), tweens)
}

func buildTween(spec tweenSpec) (component.Tween, error) {
	prop := component.TweenProperty(spec.Property)
	switch prop {
	case component.TweenPosition, component.TweenScale, component.TweenColor:
	default:
		return component.Tween{}, fmt.Errorf("unknown tween property %q", spec.Property)
	}
	if spec.Duration <= 0 {
		return component.Tween{}, fmt.Errorf("tween duration must be positive, got %v", spec.Duration)
	}

	pingPong := true
	if spec.PingPong != nil {
		pingPong = *spec.PingPong
	}

	return component.Tween{
		Property: prop,
		From:     toVec3(spec.From),
		To:       toVec3(spec.To),
		Duration: spec.Duration,
		Forward:  !spec.Reverse,
		PingPong: pingPong,
	}, nil
}

func toVec3(v []float64) common.Vec3 {
	var out common.Vec3
	if len(v) > 0 {
		out.X = v[0]
	}
	if len(v) > 1 {
		out.Y = v[1]
	}
	if len(v) > 2 {
		out.Z = v[2]
	}
	return out
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec) == 0 {
		return nil
	}

	comp := &component.Audio{
		Names:   make([]string, 0, len(spec)),
		Players: make([]*audio.Player, 0, len(spec)),
		Volume:  make([]float64, 0, len(spec)),
		Play:    make([]bool, len(spec)),
		Stop:    make([]bool, len(spec)),
	}
	for _, clip := range spec {
		player, err := loadAudioPlayer(clip.File)
		if err != nil {
			return fmt.Errorf("load audio %q: %w", clip.File, err)
		}
		volume := clip.Volume
		if volume <= 0 {
			volume = 1
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Players = append(comp.Players, player)
		comp.Volume = append(comp.Volume, volume)
	}

	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: spec.Zoom})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}
