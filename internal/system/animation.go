// internal/system/animation.go
package system

import (
	"dr-fingers/internal/entity"
	"dr-fingers/internal/input"
	"dr-fingers/pkg/utils"
)

// AnimationSystem листает кадры бега игрока в сторону движения
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(intent input.Intent, deltaTime float64) {
	for id := range s.ecs.Players {
		timer, hasTimer := s.ecs.Animations[id]
		sprite, hasSprite := s.ecs.Sprites[id]
		if !hasTimer || !hasSprite {
			continue
		}
		if !timer.Tick(deltaTime) || !intent.HasDirection() {
			continue
		}
		// Вправо - следующий кадр, влево - предыдущий
		sprite.Index = utils.Wrap(sprite.Index+intent.Direction, sprite.Atlas.Len())
		sprite.FlipX = intent.Direction < 0
	}
}
