package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/spritelab/prefabs"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory whose files override the embedded layouts.
var Dir = "levels"

// Layout lists the prefabs that make up one scene.
type Layout struct {
	Name       string             `yaml:"name"`
	Title      string             `yaml:"title"`
	Background *prefabs.YAMLColor `yaml:"background"`
	Entities   []Placement        `yaml:"entities"`
}

// Placement instantiates one prefab. Components replace the prefab's
// component of the same key.
type Placement struct {
	Prefab     string         `yaml:"prefab"`
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

// Load reads a layout, preferring a copy under Dir.
func Load(name string) (*Layout, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Parse(data)
}

// Parse decodes a layout document.
func Parse(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	for i, p := range layout.Entities {
		if p.Prefab == "" {
			return nil, fmt.Errorf("levels: %s: entity %d has no prefab", layout.Name, i)
		}
	}
	return &layout, nil
}

// Names lists the embedded layouts.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
