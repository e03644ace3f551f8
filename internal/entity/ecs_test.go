package entity

import (
	"dr-fingers/internal/component"
	"dr-fingers/pkg/tilemap"
	"testing"
)

func TestIsTopFloor(t *testing.T) {
	ecs := NewECS()
	top := ecs.NewEntity()
	bottom := ecs.NewEntity()
	player := ecs.NewEntity()

	ecs.Tiles[top] = &component.Tile{Tile: tilemap.Floor(tilemap.Top)}
	ecs.Tiles[bottom] = &component.Tile{Tile: tilemap.Floor(tilemap.Bot)}
	ecs.Players[player] = &component.Player{}

	if !ecs.IsTopFloor(top) {
		t.Error("Top tile not treated as floor")
	}
	if ecs.IsTopFloor(bottom) {
		t.Error("Bot tile treated as floor")
	}
	if ecs.IsTopFloor(player) {
		t.Error("player treated as floor")
	}

	ecs.RemoveEntity(top)
	if ecs.IsTopFloor(top) {
		t.Error("removed tile still treated as floor")
	}
	if top == bottom || bottom == player {
		t.Error("entity IDs are not unique")
	}
}
