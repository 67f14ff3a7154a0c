package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overridesFile mirrors the tuning YAML layout. Player and physics sections
// unmarshal over the current values, so absent keys keep their defaults.
type overridesFile struct {
	Player     *PlayerConfig           `yaml:"player"`
	Physics    *PhysicsConfig          `yaml:"physics"`
	Animations map[string]AnimationDef `yaml:"animations"`
}

// ApplyOverrides reads a YAML tuning file and applies it on top of the
// current values, then validates. On any error the current values are left
// untouched.
func ApplyOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}

	player := Player
	physics := Physics
	doc := overridesFile{Player: &player, Physics: &physics}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse tuning %s: %w", path, err)
	}

	animations := make(map[StateID]AnimationDef, len(Animations))
	for id, def := range Animations {
		animations[id] = def
	}
	for name, def := range doc.Animations {
		id, ok := NameToState[name]
		if !ok {
			return fmt.Errorf("parse tuning %s: unknown animation state %q", path, name)
		}
		animations[id] = def
	}

	// Swap in and validate; roll back on failure.
	prevPlayer, prevPhysics, prevAnims := Player, Physics, Animations
	Player, Physics, Animations = player, physics, animations
	if err := Validate(); err != nil {
		Player, Physics, Animations = prevPlayer, prevPhysics, prevAnims
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	return nil
}
