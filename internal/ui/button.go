// internal/ui/button.go
package ui

import (
	"dr-fingers/internal/config"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	TextColor     color.Color
	BgColor       color.Color
	HoverColor    color.Color
	Font          font.Face
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		Font:       face,
	}
}

// NewCenteredButton создаёт кнопку по центру экрана со сдвигом по Y
func NewCenteredButton(label string, face font.Face, offsetY int) *Button {
	x := (config.ScreenWidth - config.MenuButtonWidth) / 2
	y := (config.ScreenHeight-config.MenuButtonHeight)/2 + offsetY
	return NewButton(image.Rect(x, y, x+config.MenuButtonWidth, y+config.MenuButtonHeight), label, face)
}

// Contains проверяет, лежит ли точка внутри кнопки
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
// Повторные клики чаще ClickCooldown игнорируются.
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	if !b.Contains(ebiten.CursorPosition()) {
		return false
	}
	if time.Since(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bgColor := b.BgColor
	if b.Contains(ebiten.CursorPosition()) {
		bgColor = b.HoverColor
	}

	// Кнопка коротко «вздувается» после клика
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.1*math.Exp(-elapsed*8)
	w := float64(b.Rect.Dx()) * scale
	h := float64(b.Rect.Dy()) * scale
	cx := float64(b.Rect.Min.X+b.Rect.Max.X) / 2
	cy := float64(b.Rect.Min.Y+b.Rect.Max.Y) / 2

	vector.DrawFilledRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), bgColor, true)
	vector.StrokeRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), 2, config.TextLightColor, true)

	bounds := text.BoundString(b.Font, b.Text)
	textX := int(cx) - bounds.Dx()/2 - bounds.Min.X
	textY := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Font, textX, textY, b.TextColor)
}
