// internal/entity/ecs.go
package entity

import (
	"dr-fingers/internal/component"
	"dr-fingers/internal/types"
)

type ECS struct {
	GameTime   float64
	NextID     types.EntityID
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Bodies     map[types.EntityID]*component.PhysicsBody
	Sprites    map[types.EntityID]*component.Sprite
	Animations map[types.EntityID]*component.AnimationTimer
	Players    map[types.EntityID]*component.Player
	Tiles      map[types.EntityID]*component.Tile
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Bodies:     make(map[types.EntityID]*component.PhysicsBody),
		Sprites:    make(map[types.EntityID]*component.Sprite),
		Animations: make(map[types.EntityID]*component.AnimationTimer),
		Players:    make(map[types.EntityID]*component.Player),
		Tiles:      make(map[types.EntityID]*component.Tile),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
// Тело в пространстве физики удаляет вызывающий.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Bodies, id)
	delete(ecs.Sprites, id)
	delete(ecs.Animations, id)
	delete(ecs.Players, id)
	delete(ecs.Tiles, id)
}

// IsTopFloor сообщает, является ли сущность тайлом с верхней поверхностью
func (ecs *ECS) IsTopFloor(id types.EntityID) bool {
	tile, ok := ecs.Tiles[id]
	return ok && tile.Tile.IsTopFloor()
}
