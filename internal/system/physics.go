// internal/system/physics.go
package system

import (
	"dr-fingers/internal/config"
	"dr-fingers/internal/entity"
	"dr-fingers/internal/event"
	"dr-fingers/internal/physics"
)

// PhysicsSystem шагает пространство физики и переносит результат в компоненты
type PhysicsSystem struct {
	ecs        *entity.ECS
	world      *physics.World
	dispatcher *event.Dispatcher
	killY      float64 // Ниже этой высоты игрок возвращается на старт
}

func NewPhysicsSystem(ecs *entity.ECS, world *physics.World, dispatcher *event.Dispatcher) *PhysicsSystem {
	return &PhysicsSystem{
		ecs:        ecs,
		world:      world,
		dispatcher: dispatcher,
		killY:      -float64(config.ScreenHeight)/2 - config.RespawnMargin,
	}
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	s.world.Step(deltaTime)

	for id, body := range s.ecs.Bodies {
		if body.Static {
			continue
		}
		p := body.Body.Position()
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.X, pos.Y = p.X, p.Y
		}
		if vel, ok := s.ecs.Velocities[id]; ok {
			v := body.Body.Velocity()
			vel.X, vel.Y = v.X, v.Y
		}
	}

	s.respawnFallen()
}

func (s *PhysicsSystem) respawnFallen() {
	for id, player := range s.ecs.Players {
		pos, hasPos := s.ecs.Positions[id]
		body, hasBody := s.ecs.Bodies[id]
		if !hasPos || !hasBody || pos.Y >= s.killY {
			continue
		}
		physics.Teleport(body.Body, player.SpawnX, player.SpawnY)
		pos.X, pos.Y = player.SpawnX, player.SpawnY
		player.OnFloor = false
		s.dispatcher.Queue(event.Event{Type: event.PlayerRespawned, Data: id})
	}
}
