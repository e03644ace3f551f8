// component/render.go
package component

import "dr-fingers/pkg/render"

// Sprite - компонент для отрисовки кадра из атласа
type Sprite struct {
	Atlas *render.Atlas
	Index int     // Текущий кадр
	Layer int     // Больше - рисуется позже
	FlipX bool    // Зеркально по горизонтали
	Scale float64 // 0 означает 1
}
