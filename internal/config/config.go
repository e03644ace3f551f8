// internal/config/config.go
package config

import "image/color"

const (
	WindowTitle = "Dr. Fingers"

	LevelWidth  = 20 // Ширина уровня в тайлах
	LevelHeight = 14 // Высота уровня в тайлах
	TileSize    = 48.0

	ScreenWidth  = LevelWidth * int(TileSize)
	ScreenHeight = LevelHeight * int(TileSize)

	TPS          = 60
	PhysicsStep  = 1.0 / TPS // Фиксированный шаг физики, секунды
	MaxDeltaTime = 0.06

	// Размер кадра в атласе игрока
	PlayerFrameWidth  = 46
	PlayerFrameHeight = 34
	PlayerFrames      = 10

	// Атлас тайлов: 6 колонок x 2 ряда
	TileAtlasColumns = 6
	TileAtlasRows    = 2

	// Капсула игрока: горизонтальный отрезок с радиусом
	PlayerCapsuleHalfLength = 8.0
	PlayerCapsuleRadius     = 15.0
	PlayerMass              = 1.0

	PlayerSpawnX = 0.0
	PlayerSpawnY = 0.0

	RespawnMargin = 200.0 // Насколько ниже края экрана игрок может упасть

	AnimationFrameTime = 0.1 // секунды

	AudioSampleRate  = 44100
	FlyingVolume     = 0.3
	JumpChirpVolume  = 0.5
	JumpChirpSeconds = 0.12

	ClickCooldown = 300 // мс

	MenuButtonWidth  = 200
	MenuButtonHeight = 60
	FontSize         = 28
	TitleFontSize    = 48
)

var (
	BackgroundColor   = color.RGBA{102, 102, 102, 255} // 0.4, 0.4, 0.4
	TileBaseColor     = color.RGBA{96, 104, 128, 255}
	TileTopColor      = color.RGBA{170, 180, 200, 255}
	TileStrokeColor   = color.RGBA{40, 44, 56, 255}
	PlayerBodyColor   = color.RGBA{205, 150, 90, 255}
	PlayerAccentColor = color.RGBA{90, 60, 40, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	ButtonColor       = color.RGBA{38, 38, 38, 255}
	ButtonHoverColor  = color.RGBA{64, 64, 64, 255}
	DebugTextColor    = color.RGBA{255, 255, 0, 255}
)
