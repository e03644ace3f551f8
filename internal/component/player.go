// internal/component/player.go
package component

// Player хранит состояние, специфичное для игрока.
type Player struct {
	OnFloor        bool    // Касается ли игрок верхней поверхности в этом кадре
	SpawnX, SpawnY float64 // Куда возвращать игрока после падения
	Jumps          int     // Сколько раз игрок прыгнул, для отладочного вывода
}
