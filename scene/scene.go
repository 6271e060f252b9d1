// Package scene wires prefab layouts, systems and UI into the runnable demos.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritelab/common"
	"github.com/milk9111/spritelab/ecs"
	"github.com/milk9111/spritelab/ecs/entity"
	"github.com/milk9111/spritelab/ecs/system"
	"github.com/milk9111/spritelab/levels"
	"github.com/milk9111/spritelab/ui"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene is one runnable demo.
type Scene interface {
	Name() string
	Update(dt float64) error
	Draw(screen *ebiten.Image)
	// Reload rebuilds the world from its layout. On error the previous
	// world keeps running.
	Reload() error
	World() *ecs.World
	Panel() *ui.ActionsPanel
	// Background is nil when the layout leaves it to the app config.
	Background() color.Color
}

// Deps are shared by every scene.
type Deps struct {
	KeyPressed func(ebiten.Key) bool
	Debug      *system.DebugSystem
}

type constructor func(deps Deps) (Scene, error)

var registry = map[string]constructor{
	SpritesName: func(deps Deps) (Scene, error) { return NewSpritesScene(deps) },
	LerpName:    func(deps Deps) (Scene, error) { return NewLerpScene(deps) },
}

// New builds the scene registered under name.
func New(name string, deps Deps) (Scene, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownScene, name, Names())
	}
	return ctor(deps)
}

// Names lists the registered scenes.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// layoutScene runs the systems over a world built from a level layout.
type layoutScene struct {
	name       string
	layoutFile string
	deps       Deps

	world      *ecs.World
	scheduler  *ecs.Scheduler
	entities   map[string]ecs.Entity
	title      string
	background color.Color
	panel      *ui.ActionsPanel
}

func newLayoutScene(name, layoutFile string, deps Deps) (*layoutScene, error) {
	s := &layoutScene{name: name, layoutFile: layoutFile, deps: deps}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *layoutScene) Name() string { return s.name }

func (s *layoutScene) World() *ecs.World { return s.world }

func (s *layoutScene) Panel() *ui.ActionsPanel { return s.panel }

func (s *layoutScene) Background() color.Color { return s.background }

func (s *layoutScene) Reload() error {
	layout, err := levels.Load(s.layoutFile)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.name, err)
	}

	world := ecs.NewWorld()
	entities, err := entity.BuildScene(world, layout)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.name, err)
	}

	input := system.NewInputSystem()
	if s.deps.KeyPressed != nil {
		input.KeyPressed = s.deps.KeyPressed
	}

	s.world = world
	s.entities = entities
	s.scheduler = ecs.NewScheduler(
		input,
		system.NewFSMSystem(),
		system.NewAnimationSystem(),
		system.NewTweenSystem(),
		system.NewAudioSystem(),
		system.NewRenderSystem(),
	)
	if s.deps.Debug != nil {
		s.scheduler.Add(s.deps.Debug)
	}
	s.title = layout.Title
	if s.title == "" {
		s.title = s.name
	}
	s.panel.SetTitle(s.title)
	s.background = nil
	if layout.Background != nil {
		s.background = layout.Background.Color
	}

	common.LogInfo("scene loaded", "scene", s.name, "entities", len(entities))
	return nil
}

func (s *layoutScene) Update(dt float64) error {
	if s.world == nil {
		return fmt.Errorf("scene %s: not loaded", s.name)
	}
	s.world.SetDeltaTime(dt)
	s.panel.Update()
	s.scheduler.Update(s.world)
	return nil
}

func (s *layoutScene) Draw(screen *ebiten.Image) {
	if s.world == nil {
		return
	}
	s.scheduler.Draw(s.world, screen)
	s.panel.Draw(screen)
}

// Entity returns the scene entity with the given name.
func (s *layoutScene) Entity(name string) (ecs.Entity, bool) {
	e, ok := s.entities[name]
	if !ok || !s.world.IsAlive(e) {
		return 0, false
	}
	return e, true
}
