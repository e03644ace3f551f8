package physics

import (
	"dr-fingers/internal/defs"
	"dr-fingers/internal/input"
	"dr-fingers/internal/utils"

	"github.com/jakecoffman/cp"
)

// Tuning - параметры кинетики игрока
type Tuning struct {
	Acceleration float64
	AirControl   float64
	Damping      float64
	MaxSpeed     float64
	JumpSpeed    float64
}

// TuningFromDefs берёт параметры из файла определений
func TuningFromDefs(m defs.MovementDefinition) Tuning {
	return Tuning{
		Acceleration: m.Acceleration,
		AirControl:   m.AirControl,
		Damping:      m.Damping,
		MaxSpeed:     m.MaxSpeed,
		JumpSpeed:    m.JumpSpeed,
	}
}

// StepResult - итог шага кинетики
type StepResult struct {
	Velocity cp.Vector
	Jumped   bool
}

// StepVelocity вычисляет новую скорость игрока за один кадр.
// Вертикальная скорость меняется только прыжком, остальное делает движок физики.
func StepVelocity(t Tuning, v cp.Vector, intent input.Intent, onFloor bool, dt float64) StepResult {
	res := StepResult{Velocity: v}

	if intent.Jump && onFloor {
		res.Velocity.Y = t.JumpSpeed
		res.Jumped = true
	}

	accel := t.Acceleration * dt
	if !onFloor {
		accel *= t.AirControl
	}
	vx := res.Velocity.X + float64(intent.Direction)*accel
	vx = utils.MoveTowards(vx, 0, t.Damping*dt)
	res.Velocity.X = utils.Clamp(vx, -t.MaxSpeed, t.MaxSpeed)

	return res
}
