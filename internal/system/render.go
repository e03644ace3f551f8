// internal/system/render.go
package system

import (
	"dr-fingers/internal/config"
	"dr-fingers/internal/entity"
	"dr-fingers/internal/types"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem рисует спрайты. Камера ортографическая,
// центр мира в центре экрана, ось Y мира направлена вверх.
type RenderSystem struct {
	ecs   *entity.ECS
	order []types.EntityID
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// WorldToScreen переводит мировые координаты в экранные
func WorldToScreen(x, y float64) (float64, float64) {
	return x + float64(config.ScreenWidth)/2, float64(config.ScreenHeight)/2 - y
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.order = s.order[:0]
	for id := range s.ecs.Sprites {
		if _, ok := s.ecs.Positions[id]; ok {
			s.order = append(s.order, id)
		}
	}
	// Сначала по слою, потом по ID, чтобы порядок не скакал между кадрами
	sort.Slice(s.order, func(i, j int) bool {
		a, b := s.ecs.Sprites[s.order[i]], s.ecs.Sprites[s.order[j]]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return s.order[i] < s.order[j]
	})

	for _, id := range s.order {
		sprite := s.ecs.Sprites[id]
		pos := s.ecs.Positions[id]
		frame := sprite.Atlas.Frame(sprite.Index)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(sprite.Atlas.FrameW)/2, -float64(sprite.Atlas.FrameH)/2)
		if sprite.FlipX {
			op.GeoM.Scale(-1, 1)
		}
		if sprite.Scale != 0 && sprite.Scale != 1 {
			op.GeoM.Scale(sprite.Scale, sprite.Scale)
		}
		sx, sy := WorldToScreen(pos.X, pos.Y)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(frame, op)
	}
}
