// internal/event/types.go
package event

const (
	PlayerJumped    EventType = "PlayerJumped"    // Игрок оттолкнулся от пола
	PlayerLanded    EventType = "PlayerLanded"    // Игрок коснулся верхней поверхности
	PlayerRespawned EventType = "PlayerRespawned" // Игрок упал за край и возвращён
)
