package config

import (
	"fmt"

	"github.com/milk9111/spritelab/common"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings survive between runs. TimeScale is nil until the user changes
// it, so the app config keeps deciding the speed until then.
type Settings struct {
	LastScene string   `yaml:"lastScene"`
	TimeScale *float64 `yaml:"timeScale,omitempty"`
	ShowPanel bool     `yaml:"showPanel"`
	Debug     bool     `yaml:"debug"`
}

func DefaultSettings() *Settings {
	return &Settings{
		ShowPanel: true,
	}
}

// TimeScaleOr returns the saved time scale, or def when none was saved.
func (s *Settings) TimeScaleOr(def float64) float64 {
	if s == nil || s.TimeScale == nil {
		return def
	}
	return *s.TimeScale
}

// SettingsManager loads and saves Settings through gdata. With a nil
// manager settings live only in memory.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// OpenStorage opens the per-user data directory for appName.
func OpenStorage(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("config: open storage: %w", err)
	}
	return m, nil
}

func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		common.LogWarn("settings: load failed, using defaults", "err", err)
	}
	return sm
}

func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	if loaded.TimeScale != nil && *loaded.TimeScale < 0 {
		*loaded.TimeScale = 0
	}

	sm.settings = loaded
	common.LogDebug("settings: loaded", "scene", loaded.LastScene, "time_scale", loaded.TimeScaleOr(1))
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}

	common.LogDebug("settings: saved")
	return nil
}

func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

func (sm *SettingsManager) SetLastScene(name string) {
	sm.settings.LastScene = name
}

// SetTimeScale stores the simulation speed multiplier; negatives become 0.
func (sm *SettingsManager) SetTimeScale(scale float64) {
	scale = max(scale, 0)
	sm.settings.TimeScale = &scale
}

func (sm *SettingsManager) SetShowPanel(show bool) {
	sm.settings.ShowPanel = show
}

func (sm *SettingsManager) SetDebug(debug bool) {
	sm.settings.Debug = debug
}
