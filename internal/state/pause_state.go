// internal/state/pause_state.go
package state

import (
	"dr-fingers/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует её под затемнением
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)

	if unpause {
		// Возвращаемся в ту же игру, без пересоздания мира
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), float32(config.ScreenHeight), color.RGBA{0, 0, 0, 128}, false)

	face := s.previousState.assets.TitleFont
	pauseText := "PAUSED"
	bounds := text.BoundString(face, pauseText)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight/2 + bounds.Dy()/2
	text.Draw(screen, pauseText, face, x, y, color.White)
}

func (s *PauseState) Exit() {}
