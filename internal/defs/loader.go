// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
)

// ErrInvalidDefinition возвращается, когда значения в файле определений недопустимы.
var ErrInvalidDefinition = errors.New("invalid definition")

// LoadGameDefinitions reads the definitions file and validates it.
func LoadGameDefinitions(fsys fs.FS, path string) (*GameDefinitions, error) {
	file, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game definitions file: %w", err)
	}

	var gameDefs GameDefinitions
	if err := json.Unmarshal(file, &gameDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game definitions: %w", err)
	}

	if err := gameDefs.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Loaded game definitions from %s (%d key bindings)", path, gameDefs.Bindings.count())
	return &gameDefs, nil
}

// Validate проверяет, что все параметры имеют смысл.
func (d *GameDefinitions) Validate() error {
	m := d.Movement
	positive := []struct {
		name  string
		value float64
	}{
		{"acceleration", m.Acceleration},
		{"damping", m.Damping},
		{"max_speed", m.MaxSpeed},
		{"jump_speed", m.JumpSpeed},
		{"gravity", m.Gravity},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("movement.%s must be positive, got %v: %w", p.name, p.value, ErrInvalidDefinition)
		}
	}
	if m.AirControl <= 0 || m.AirControl > 1 {
		return fmt.Errorf("movement.air_control must be in (0, 1], got %v: %w", m.AirControl, ErrInvalidDefinition)
	}

	b := d.Bindings
	for name, keys := range map[string][]string{"left": b.Left, "right": b.Right, "jump": b.Jump} {
		if len(keys) == 0 {
			return fmt.Errorf("bindings.%s has no keys: %w", name, ErrInvalidDefinition)
		}
	}
	return nil
}

func (b BindingsDefinition) count() int {
	return len(b.Left) + len(b.Right) + len(b.Jump)
}
