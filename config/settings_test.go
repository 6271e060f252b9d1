package config

import (
	"testing"
)

func useTempHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func TestSettingsManagerInMemory(t *testing.T) {
	sm := NewSettingsManager(nil)
	if *sm.Settings() != *DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", sm.Settings())
	}

	sm.SetLastScene("lerp")
	sm.SetTimeScale(-3)
	if err := sm.Save(); err != nil {
		t.Fatalf("save without storage should be a no-op: %v", err)
	}
	if got := sm.Settings().TimeScaleOr(1); got != 0 {
		t.Fatalf("expected negative time scale clamped, got %v", got)
	}
	if err := sm.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if sm.Settings().LastScene != "" {
		t.Fatalf("in-memory load should reset to defaults")
	}
}

func TestSettingsManagerPersists(t *testing.T) {
	useTempHome(t)

	storage, err := OpenStorage("spritelab_test")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}

	sm := NewSettingsManager(storage)
	sm.SetLastScene("lerp")
	sm.SetTimeScale(0.25)
	sm.SetShowPanel(false)
	sm.SetDebug(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewSettingsManager(storage)
	got := reloaded.Settings()
	if got.LastScene != "lerp" || got.ShowPanel || !got.Debug || got.TimeScaleOr(1) != 0.25 {
		t.Fatalf("unexpected settings %+v (time scale %v)", *got, got.TimeScaleOr(1))
	}
}

func TestSettingsManagerCorruptData(t *testing.T) {
	useTempHome(t)

	storage, err := OpenStorage("spritelab_corrupt")
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	if err := storage.SaveObjectProp(settingsObject, settingsProperty, []byte("lastScene: [")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	sm := NewSettingsManager(storage)
	if *sm.Settings() != *DefaultSettings() {
		t.Fatalf("expected defaults after corrupt data, got %+v", sm.Settings())
	}
	if err := sm.Load(); err == nil {
		t.Fatalf("expected unmarshal error")
	}
}

func TestSettingsTimeScaleSaved(t *testing.T) {
	useTempHome(t)

	one := 1.0
	tests := []struct {
		name  string
		app   string
		set   *float64
		want  float64
		saved bool
	}{
		{name: "never set", app: "spritelab_speed_unset", want: 2, saved: false},
		{name: "paused", app: "spritelab_speed_paused", set: new(float64), want: 0, saved: true},
		{name: "normal speed", app: "spritelab_speed_normal", set: &one, want: 1, saved: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			storage, err := OpenStorage(tc.app)
			if err != nil {
				t.Fatalf("open storage: %v", err)
			}
			sm := NewSettingsManager(storage)
			if tc.set != nil {
				sm.SetTimeScale(*tc.set)
			}
			if err := sm.Save(); err != nil {
				t.Fatalf("save: %v", err)
			}

			got := NewSettingsManager(storage).Settings()
			if (got.TimeScale != nil) != tc.saved || got.TimeScaleOr(2) != tc.want {
				t.Fatalf("expected %v (saved=%v), got %+v", tc.want, tc.saved, got)
			}
		})
	}
}
