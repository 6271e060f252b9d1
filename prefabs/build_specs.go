package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image        string     `yaml:"image"`
	OriginX      float64    `yaml:"origin_x"`
	OriginY      float64    `yaml:"origin_y"`
	CenterOrigin bool       `yaml:"center_origin"`
	Tint         *YAMLColor `yaml:"tint"`
}

type ClipSpec struct {
	Name  string  `yaml:"name"`
	Begin int     `yaml:"begin"`
	End   int     `yaml:"end"`
	FPS   float64 `yaml:"fps"`
}

type SpritesheetComponentSpec struct {
	Image        string     `yaml:"image"`
	FrameW       int        `yaml:"frame_w"`
	FrameH       int        `yaml:"frame_h"`
	Columns      int        `yaml:"columns"`
	DefaultFrame int        `yaml:"default_frame"`
	Clips        []ClipSpec `yaml:"clips"`
}

type AnimatorComponentSpec struct {
	Play string `yaml:"play"`
	Mode string `yaml:"mode"`
}

type FSMComponentSpec struct {
	Kind string `yaml:"kind"`
}

type ControllerComponentSpec struct {
	Left     string  `yaml:"left"`
	Right    string  `yaml:"right"`
	Speed    float64 `yaml:"speed"`
	Variable string  `yaml:"variable"`
}

type TweenComponentSpec struct {
	Property string    `yaml:"property"`
	From     []float64 `yaml:"from"`
	To       []float64 `yaml:"to"`
	Duration float64   `yaml:"duration"`
	PingPong *bool     `yaml:"ping_pong"`
	Reverse  bool      `yaml:"reverse"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec []AudioClipSpec

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}
