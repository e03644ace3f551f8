// internal/state/game_state.go
package state

import (
	game "dr-fingers/internal/app"
	"dr-fingers/internal/assets"
	"dr-fingers/internal/config"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState - состояние игры
type GameState struct {
	sm     *StateMachine
	assets *assets.Manager
	opts   Options
	game   *game.Game
}

func NewGameState(sm *StateMachine, am *assets.Manager, opts Options) *GameState {
	gameLogic, err := game.NewGame(am, opts.Debug)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	return &GameState{
		sm:     sm,
		assets: am,
		opts:   opts,
		game:   gameLogic,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.assets, g.opts))
		g.game.Cleanup()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Draw(screen)
}

func (g *GameState) Exit() {
	g.game.Pause()
}
