// internal/state/loading_state.go
package state

import (
	"dr-fingers/internal/assets"
	"dr-fingers/internal/config"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Options - настройки запуска, общие для всех состояний
type Options struct {
	SkipMenu bool // Сразу начинать с игры
	Debug    bool
}

// LoadingState загружает ресурсы и переходит в меню (или сразу в игру)
type LoadingState struct {
	sm     *StateMachine
	assets *assets.Manager
	opts   Options
	frames int
}

func NewLoadingState(sm *StateMachine, am *assets.Manager, opts Options) *LoadingState {
	return &LoadingState{sm: sm, assets: am, opts: opts}
}

func (s *LoadingState) Enter() {
	s.frames = 0
}

func (s *LoadingState) Update(deltaTime float64) {
	// Первый кадр рисуем экран загрузки, грузим во втором
	s.frames++
	if s.frames < 2 {
		return
	}

	if err := s.assets.Load(); err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	if s.opts.SkipMenu {
		s.sm.SetState(NewGameState(s.sm, s.assets, s.opts))
	} else {
		s.sm.SetState(NewMenuState(s.sm, s.assets, s.opts))
	}
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "Loading...", config.ScreenWidth/2-30, config.ScreenHeight/2)
}

func (s *LoadingState) Exit() {}
