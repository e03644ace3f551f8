// internal/system/player_system.go
package system

import (
	"dr-fingers/internal/entity"
	"dr-fingers/internal/event"
	"dr-fingers/internal/input"
	"dr-fingers/internal/physics"
	"dr-fingers/internal/types"
)

// PlayerSystem отвечает за кинетику игрока: пол, прыжок, разгон и торможение.
// Положение тела не трогает, это делает движок физики.
type PlayerSystem struct {
	ecs        *entity.ECS
	tuning     physics.Tuning
	dispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, tuning physics.Tuning, dispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, tuning: tuning, dispatcher: dispatcher}
}

func (s *PlayerSystem) Update(intent input.Intent, deltaTime float64) {
	for id, player := range s.ecs.Players {
		body, ok := s.ecs.Bodies[id]
		if !ok {
			continue
		}

		wasOnFloor := player.OnFloor
		player.OnFloor = physics.TouchesTopFloor(physics.Contacts(body.Body), s.ecs.IsTopFloor)
		if player.OnFloor && !wasOnFloor {
			s.dispatcher.Queue(event.Event{Type: event.PlayerLanded, Data: id})
		}

		res := physics.StepVelocity(s.tuning, body.Body.Velocity(), intent, player.OnFloor, deltaTime)
		body.Body.SetVelocity(res.Velocity.X, res.Velocity.Y)

		if res.Jumped {
			player.Jumps++
			s.dispatcher.Queue(event.Event{Type: event.PlayerJumped, Data: id})
		}
	}
}

// OnFloor сообщает состояние пола для игрока id
func (s *PlayerSystem) OnFloor(id types.EntityID) bool {
	player, ok := s.ecs.Players[id]
	return ok && player.OnFloor
}
