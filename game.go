package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritelab/common"
	"github.com/milk9111/spritelab/config"
	"github.com/milk9111/spritelab/ecs/system"
	"github.com/milk9111/spritelab/prefabs"
	"github.com/milk9111/spritelab/scene"
)

const (
	maxTimeScale  = 4.0
	timeScaleStep = 0.25
)

var sceneKeys = map[ebiten.Key]string{
	ebiten.KeyF1: scene.SpritesName,
	ebiten.KeyF2: scene.LerpName,
}

type Game struct {
	cfg      config.Config
	settings *config.SettingsManager
	watcher  *prefabs.Watcher

	deps   scene.Deps
	debug  *system.DebugSystem
	active scene.Scene

	timeScale float64
	showPanel bool
	closed    bool
}

func NewGame(cfg config.Config, settings *config.SettingsManager, sceneName string) (*Game, error) {
	if settings == nil {
		settings = config.NewSettingsManager(nil)
	}
	s := settings.Settings()

	debug := system.NewDebugSystem()
	debug.Enabled = cfg.Debug || s.Debug

	timeScale := min(max(s.TimeScaleOr(cfg.TimeScale), 0), maxTimeScale)

	g := &Game{
		cfg:       cfg,
		settings:  settings,
		deps:      scene.Deps{Debug: debug},
		debug:     debug,
		timeScale: timeScale,
		showPanel: s.ShowPanel,
	}

	if sceneName != "" {
		if err := g.SwitchScene(sceneName); err != nil {
			return nil, err
		}
		return g, nil
	}

	if s.LastScene != "" {
		err := g.SwitchScene(s.LastScene)
		if err == nil {
			return g, nil
		}
		common.LogWarn("saved scene unavailable", "scene", s.LastScene, "err", err)
	}
	if err := g.SwitchScene(cfg.Scene); err != nil {
		return nil, err
	}
	return g, nil
}

// Watch hot-reloads the active scene whenever w reports a change.
func (g *Game) Watch(w *prefabs.Watcher) {
	g.watcher = w
}

// SwitchScene replaces the active scene. On error the current one stays.
func (g *Game) SwitchScene(name string) error {
	next, err := scene.New(name, g.deps)
	if err != nil {
		return err
	}
	if p := next.Panel(); p != nil {
		p.Visible = g.showPanel
	}
	g.active = next
	g.settings.SetLastScene(name)
	common.LogInfo("scene active", "scene", name)
	return nil
}

func (g *Game) Scene() scene.Scene {
	return g.active
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, name := range sceneKeys {
		if inpututil.IsKeyJustPressed(key) && name != g.active.Name() {
			if err := g.SwitchScene(name); err != nil {
				common.LogError("switch scene", "scene", name, "err", err)
			} else {
				g.persist()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.TogglePanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.ToggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.SetTimeScale(g.timeScale - timeScaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.SetTimeScale(g.timeScale + timeScaleStep)
	}

	g.drainReloads()

	return g.active.Update(frameSeconds(g.timeScale, ebiten.TPS()))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background())
	g.active.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) TogglePanel() {
	g.showPanel = !g.showPanel
	if p := g.active.Panel(); p != nil {
		p.Visible = g.showPanel
	}
	g.settings.SetShowPanel(g.showPanel)
}

func (g *Game) ToggleDebug() {
	g.debug.Enabled = !g.debug.Enabled
	common.SetDebug(g.debug.Enabled)
	g.settings.SetDebug(g.debug.Enabled)
}

// SetTimeScale clamps scale to [0, maxTimeScale].
func (g *Game) SetTimeScale(scale float64) {
	g.timeScale = min(max(scale, 0), maxTimeScale)
	g.settings.SetTimeScale(g.timeScale)
	common.LogDebug("time scale", "scale", g.timeScale)
}

// Close persists settings and stops the watcher. Later calls do nothing.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.persist()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			common.LogWarn("close watcher", "err", err)
		}
		g.watcher = nil
	}
}

func (g *Game) persist() {
	if err := g.settings.Save(); err != nil {
		common.LogWarn("save settings", "err", err)
	}
}

func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			common.LogInfo("file changed", "file", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			common.LogWarn("watcher", "err", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}
	if err := g.active.Reload(); err != nil {
		common.LogError("reload scene", "scene", g.active.Name(), "err", err)
	}
}

func (g *Game) background() color.Color {
	if bg := g.active.Background(); bg != nil {
		return bg
	}
	return g.cfg.Background()
}

// frameSeconds is the simulated time of one tick.
func frameSeconds(timeScale float64, tps int) float64 {
	if tps <= 0 || timeScale <= 0 {
		return 0
	}
	return timeScale / float64(tps)
}

func sceneError(name string, err error) error {
	if errors.Is(err, scene.ErrUnknownScene) {
		return fmt.Errorf("unknown scene %q, choose one of %v", name, scene.Names())
	}
	return fmt.Errorf("start scene %q: %w", name, err)
}
