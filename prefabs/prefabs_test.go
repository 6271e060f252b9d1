package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/spritelab/common"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedPrefabsDecode(t *testing.T) {
	tests := []struct {
		file       string
		name       string
		components []string
	}{
		{file: "knight.yaml", name: "knight", components: []string{"transform", "spritesheet", "sprite", "animator", "fsm", "controller"}},
		{file: "warrior.yaml", name: "warrior", components: []string{"transform", "spritesheet", "sprite", "animator", "fsm", "controller"}},
		{file: "explosion.yaml", name: "explosion", components: []string{"transform", "spritesheet", "sprite", "animator", "audio"}},
		{file: "camera.yaml", name: "camera", components: []string{"camera_tag", "transform", "camera"}},
		{file: "duck.yaml", name: "duck", components: []string{"transform", "sprite", "tweens"}},
		{file: "bird.yaml", name: "bird", components: []string{"transform", "sprite", "tweens"}},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tc.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name != tc.name {
				t.Fatalf("expected name %q, got %q", tc.name, spec.Name)
			}
			for _, c := range tc.components {
				if _, ok := spec.Components[c]; !ok {
					t.Fatalf("expected component %q", c)
				}
			}
		})
	}
}

func TestDecodeSpritesheetSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("knight.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	sheet, err := DecodeComponentSpec[SpritesheetComponentSpec](spec.Components["spritesheet"])
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sheet.FrameW != 64 || sheet.FrameH != 64 {
		t.Fatalf("expected 64x64 frames, got %dx%d", sheet.FrameW, sheet.FrameH)
	}

	want := []ClipSpec{
		{Name: "idle", Begin: 0, End: 4, FPS: 12},
		{Name: "run", Begin: 5, End: 12, FPS: 12},
		{Name: "attack", Begin: 19, End: 21, FPS: 12},
	}
	if len(sheet.Clips) != len(want) {
		t.Fatalf("expected %d clips, got %d", len(want), len(sheet.Clips))
	}
	for i := range want {
		if sheet.Clips[i] != want[i] {
			t.Fatalf("clip %d: expected %+v, got %+v", i, want[i], sheet.Clips[i])
		}
	}
}

func TestDecodeComponentSpecNil(t *testing.T) {
	got, err := DecodeComponentSpec[TransformComponentSpec](nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != (TransformComponentSpec{}) {
		t.Fatalf("expected zero spec, got %+v", got)
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    common.RGBA
		wantErr bool
	}{
		{name: "rgb", doc: `"#00ffff"`, want: common.RGBA{R: 0, G: 1, B: 1, A: 1}},
		{name: "rgba", doc: `"ff000000"`, want: common.RGBA{R: 1, G: 0, B: 0, A: 0}},
		{name: "short", doc: `"#fff"`, wantErr: true},
		{name: "not hex", doc: `"#gggggg"`, wantErr: true},
		{name: "not scalar", doc: `[1, 2]`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.doc), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := c.Tint(); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}

	var nilColor *YAMLColor
	if nilColor.Tint() != common.White {
		t.Fatalf("expected nil colour to be white")
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(dir, "knight.yaml"), []byte("name: disk-knight\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	spec, err := LoadEntityBuildSpec("prefabs/knight.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Name != "disk-knight" {
		t.Fatalf("expected disk prefab, got %q", spec.Name)
	}
	if _, ok := ModTime("knight.yaml"); !ok {
		t.Fatalf("expected mod time for disk prefab")
	}
	if _, ok := ModTime("bird.yaml"); ok {
		t.Fatalf("expected no mod time for embedded-only prefab")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"bird.yaml", "camera.yaml", "duck.yaml", "explosion.yaml", "knight.yaml", "warrior.yaml"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, "knight.yaml")
	if err := os.WriteFile(target, []byte("name: knight\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %q, got %q", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestNewWatcherErrors(t *testing.T) {
	if _, err := NewWatcher(); err == nil {
		t.Fatalf("expected error without directories")
	}
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
