package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SceneFile is the descriptor the game loads at startup.
const SceneFile = "sprite_scene.yaml"

// SceneSpec is a parsed scene descriptor. It stays schema-only: range and
// cross-field checks happen when the descriptor is resolved against its
// sprite sheet.
type SceneSpec struct {
	Name       string              `yaml:"name"`
	Sprite     SpriteSpec          `yaml:"sprite"`
	Transform  TransformSpec       `yaml:"transform"`
	Animations map[string]ClipSpec `yaml:"animations"`
}

// SpriteSpec declares the sheet image and its frame grid.
type SpriteSpec struct {
	Sheet       string `yaml:"sheet"`
	FrameWidth  int    `yaml:"frame_w"`
	FrameHeight int    `yaml:"frame_h"`
	Columns     int    `yaml:"columns"`
	Rows        int    `yaml:"rows"`
	Index       int    `yaml:"index"`
}

// TransformSpec is the spawn position of the scene entity.
type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ClipSpec is one named animation: sheet indices played at a fixed rate.
type ClipSpec struct {
	Frames []int   `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
}

// LoadSpec reads and unmarshals a descriptor by name.
func LoadSpec[T any](filename string) (*T, error) {
	data, err := ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return &spec, nil
}

// Load reads and parses a scene descriptor.
func Load(filename string) (*SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}
