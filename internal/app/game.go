// internal/app/game.go
package app

import (
	"dr-fingers/internal/assets"
	"dr-fingers/internal/config"
	"dr-fingers/internal/entity"
	"dr-fingers/internal/event"
	"dr-fingers/internal/physics"
	"dr-fingers/internal/system"
	"dr-fingers/internal/types"
	"dr-fingers/internal/ui"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game holds the level world and the systems that drive it.
type Game struct {
	Assets          *assets.Manager
	ECS             *entity.ECS
	World           *physics.World
	EventDispatcher *event.Dispatcher
	ActionSystem    *system.ActionSystem
	PlayerSystem    *system.PlayerSystem
	PhysicsSystem   *system.PhysicsSystem
	AnimationSystem *system.AnimationSystem
	RenderSystem    *system.RenderSystem
	AudioSystem     *system.AudioSystem
	FloorIndicator  *ui.StateIndicator
	PlayerID        types.EntityID
	Debug           bool

	gameTime float64
	respawns int
}

// NewGame builds the world from loaded assets: level tiles, the player and all systems.
func NewGame(am *assets.Manager, debug bool) (*Game, error) {
	if am == nil || !am.Loaded() {
		panic("assets must be loaded before the game is created")
	}

	bindings, err := system.ParseBindings(am.Defs.Bindings)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	audioSystem, err := system.NewAudioSystem(am.JumpPCM)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	world := physics.NewWorld(am.Defs.Movement.Gravity)

	g := &Game{
		Assets:          am,
		ECS:             ecs,
		World:           world,
		EventDispatcher: eventDispatcher,
		ActionSystem:    system.NewActionSystem(bindings),
		PlayerSystem:    system.NewPlayerSystem(ecs, physics.TuningFromDefs(am.Defs.Movement), eventDispatcher),
		PhysicsSystem:   system.NewPhysicsSystem(ecs, world, eventDispatcher),
		AnimationSystem: system.NewAnimationSystem(ecs),
		RenderSystem:    system.NewRenderSystem(ecs),
		AudioSystem:     audioSystem,
		FloorIndicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-20), 20, 8,
			color.RGBA{50, 205, 50, 255}, color.RGBA{220, 60, 60, 255},
		),
		Debug: debug,
	}

	eventDispatcher.Subscribe(event.PlayerJumped, audioSystem)
	eventDispatcher.Subscribe(event.PlayerRespawned, event.ListenerFunc(func(e event.Event) {
		g.respawns++
		log.Printf("Player %v fell off the level, respawned (%d total)", e.Data, g.respawns)
	}))

	if debug {
		eventDispatcher.Subscribe(event.PlayerLanded, event.ListenerFunc(func(e event.Event) {
			log.Printf("Player %v landed at t=%.2fs", e.Data, g.gameTime)
		}))
	}

	g.spawnLevel()
	g.PlayerID = g.spawnPlayer(config.PlayerSpawnX, config.PlayerSpawnY)

	return g, nil
}

// Update выполняет один кадр: ввод, кинетика, шаг физики, анимация, звук.
// Ebitengine вызывает Update с фиксированной частотой, поэтому физика
// шагает на PhysicsStep за кадр.
func (g *Game) Update(deltaTime float64) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	intent := g.ActionSystem.Update()
	g.PlayerSystem.Update(intent, config.PhysicsStep)
	g.PhysicsSystem.Update(config.PhysicsStep)
	g.AnimationSystem.Update(intent, deltaTime)
	g.AudioSystem.Update(intent)
	g.FloorIndicator.Set(g.PlayerSystem.OnFloor(g.PlayerID))

	g.EventDispatcher.Flush()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.RenderSystem.Draw(screen)
	if !g.Debug {
		return
	}

	g.FloorIndicator.Draw(screen)
	vel := g.ECS.Velocities[g.PlayerID]
	pos := g.ECS.Positions[g.PlayerID]
	player := g.ECS.Players[g.PlayerID]
	intent := g.ActionSystem.Intent()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %.1f FPS: %.1f\npos: (%.1f, %.1f)\nvel: (%.1f, %.1f)\non floor: %v jumps: %d\nintent: dir=%d jump=%v",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		pos.X, pos.Y, vel.X, vel.Y,
		player.OnFloor, player.Jumps,
		intent.Direction, intent.Jump,
	))
}

// Pause глушит звук и забывает ввод, например при выходе в меню
func (g *Game) Pause() {
	g.AudioSystem.Pause()
	g.ActionSystem.Reset()
}

// Cleanup освобождает звуковые плееры
func (g *Game) Cleanup() {
	g.AudioSystem.Close()
}
