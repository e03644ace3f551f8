// internal/state/menu_state.go
package state

import (
	"dr-fingers/internal/assets"
	"dr-fingers/internal/config"
	"dr-fingers/internal/ui"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState - главное меню с кнопкой Play
type MenuState struct {
	sm         *StateMachine
	assets     *assets.Manager
	opts       Options
	playButton *ui.Button
	quitButton *ui.Button
}

func NewMenuState(sm *StateMachine, am *assets.Manager, opts Options) *MenuState {
	return &MenuState{
		sm:         sm,
		assets:     am,
		opts:       opts,
		playButton: ui.NewCenteredButton("Play", am.Font, 0),
		quitButton: ui.NewCenteredButton("Quit", am.Font, config.MenuButtonHeight+20),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if m.playButton.IsClicked() ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.assets, m.opts))
		return
	}
	if m.quitButton.IsClicked() {
		m.assets.Cleanup()
		os.Exit(0)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := config.WindowTitle
	bounds := text.BoundString(m.assets.TitleFont, title)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	y := config.ScreenHeight/2 - 2*config.MenuButtonHeight
	text.Draw(screen, title, m.assets.TitleFont, x, y, config.TextLightColor)

	m.playButton.Draw(screen)
	m.quitButton.Draw(screen)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
