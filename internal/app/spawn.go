// internal/app/spawn.go
package app

import (
	"dr-fingers/internal/component"
	"dr-fingers/internal/config"
	"dr-fingers/internal/types"
	"dr-fingers/pkg/tilemap"
	"log"
)

const (
	tileLayer   = 10
	playerLayer = 100
)

// spawnLevel создаёт по сущности на каждую клетку пола: спрайт и статический куб
func (g *Game) spawnLevel() {
	half := config.TileSize / 2
	cells := g.Assets.Level.FloorCells()
	for _, cell := range cells {
		id := g.ECS.NewEntity()
		x, y := tilemap.CellCenter(cell.Col, cell.Row)

		g.ECS.Positions[id] = &component.Position{X: x, Y: y}
		g.ECS.Tiles[id] = &component.Tile{Tile: cell.Tile, Col: cell.Col, Row: cell.Row}
		g.ECS.Sprites[id] = &component.Sprite{
			Atlas: g.Assets.Tiles,
			Index: cell.Tile.Side.Index(),
			Layer: tileLayer,
		}
		shape := g.World.AddStaticBox(id, x, y, half, half)
		g.ECS.Bodies[id] = &component.PhysicsBody{Body: shape.Body(), Shape: shape, Static: true}
	}
	log.Printf("Spawned %d level tiles", len(cells))
}

// spawnPlayer создаёт игрока с капсулой и анимацией бега
func (g *Game) spawnPlayer(x, y float64) types.EntityID {
	id := g.ECS.NewEntity()
	body, shape := g.World.AddCapsule(id, x, y,
		config.PlayerCapsuleHalfLength, config.PlayerCapsuleRadius, config.PlayerMass)

	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Velocities[id] = &component.Velocity{}
	g.ECS.Bodies[id] = &component.PhysicsBody{Body: body, Shape: shape}
	g.ECS.Players[id] = &component.Player{SpawnX: x, SpawnY: y}
	g.ECS.Sprites[id] = &component.Sprite{Atlas: g.Assets.Player, Layer: playerLayer}
	g.ECS.Animations[id] = &component.AnimationTimer{Interval: config.AnimationFrameTime}
	return id
}
