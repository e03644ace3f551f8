// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator - кружок, который показывает логическое состояние (например, пол под ногами)
// и коротко пульсирует при его смене.
type StateIndicator struct {
	X, Y           float32
	Radius         float32
	OnColor        color.Color
	OffColor       color.Color
	state          bool
	lastChangeTime time.Time
}

func NewStateIndicator(x, y, radius float32, onColor, offColor color.Color) *StateIndicator {
	return &StateIndicator{
		X:        x,
		Y:        y,
		Radius:   radius,
		OnColor:  onColor,
		OffColor: offColor,
	}
}

// Set обновляет состояние, запоминая момент смены
func (i *StateIndicator) Set(state bool) {
	if state != i.state {
		i.state = state
		i.lastChangeTime = time.Now()
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image) {
	elapsed := time.Since(i.lastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	fill := i.OffColor
	if i.state {
		fill = i.OnColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1.5, color.White, true)
}
