package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritelab/common"
	"github.com/milk9111/spritelab/config"
	"github.com/milk9111/spritelab/levels"
	"github.com/milk9111/spritelab/prefabs"
)

const appName = "spritelab"

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML app config")
	sceneName := flag.String("scene", "", "scene to start in (sprites, lerp)")
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	watch := flag.Bool("watch", false, "reload the scene when files under prefabs/ or levels/ change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		common.LogFatal("load config", "path", *configPath, "err", err)
	}
	cfg.Debug = cfg.Debug || *debug
	cfg.Watch = cfg.Watch || *watch
	common.SetDebug(cfg.Debug)

	storage, err := config.OpenStorage(appName)
	if err != nil {
		common.LogWarn("settings will not persist", "err", err)
		storage = nil
	}
	settings := config.NewSettingsManager(storage)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, settings, *sceneName)
	if err != nil {
		common.LogFatal("start", "err", sceneError(*sceneName, err))
	}

	if cfg.Watch {
		if w, err := newWatcher(); err != nil {
			common.LogWarn("hot reload disabled", "err", err)
		} else {
			game.Watch(w)
		}
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		common.LogFatal("run", "err", err)
	}
}

// newWatcher watches the on-disk prefab and level directories that exist.
func newWatcher() (*prefabs.Watcher, error) {
	var dirs []string
	for _, dir := range []string{prefabs.Dir, levels.Dir} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return prefabs.NewWatcher(dirs...)
}
