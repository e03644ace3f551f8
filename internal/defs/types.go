// internal/defs/types.go
package defs

// MovementDefinition описывает параметры управления игроком.
// Скорости в пикселях в секунду, ускорения в пикселях в секунду за секунду.
type MovementDefinition struct {
	Acceleration float64 `json:"acceleration"`
	AirControl   float64 `json:"air_control"` // Доля ускорения в воздухе
	Damping      float64 `json:"damping"`
	MaxSpeed     float64 `json:"max_speed"`
	JumpSpeed    float64 `json:"jump_speed"`
	Gravity      float64 `json:"gravity"` // Модуль, направлена вниз
}

// BindingsDefinition - имена клавиш Ebitengine для каждого управления
type BindingsDefinition struct {
	Left  []string `json:"left"`
	Right []string `json:"right"`
	Jump  []string `json:"jump"`
}

// GameDefinitions - корень файла определений
type GameDefinitions struct {
	Movement MovementDefinition `json:"movement"`
	Bindings BindingsDefinition `json:"bindings"`
}
