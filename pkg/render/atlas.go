// pkg/render/atlas.go
package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas - текстурный атлас из одинаковых кадров, уложенных по строкам
type Atlas struct {
	Image   *ebiten.Image
	FrameW  int
	FrameH  int
	Columns int
	Rows    int
	frames  []*ebiten.Image
}

// NewAtlas нарезает изображение на кадры frameW x frameH
func NewAtlas(img *ebiten.Image, frameW, frameH, columns, rows int) *Atlas {
	a := &Atlas{
		Image:   img,
		FrameW:  frameW,
		FrameH:  frameH,
		Columns: columns,
		Rows:    rows,
	}
	a.frames = make([]*ebiten.Image, 0, columns*rows)
	for i := 0; i < columns*rows; i++ {
		a.frames = append(a.frames, img.SubImage(FrameRect(i, columns, frameW, frameH)).(*ebiten.Image))
	}
	return a
}

// FrameRect возвращает прямоугольник кадра с индексом i
func FrameRect(i, columns, frameW, frameH int) image.Rectangle {
	col, row := i%columns, i/columns
	return image.Rect(col*frameW, row*frameH, (col+1)*frameW, (row+1)*frameH)
}

// Len возвращает количество кадров
func (a *Atlas) Len() int {
	return len(a.frames)
}

// Frame возвращает кадр по индексу
func (a *Atlas) Frame(i int) *ebiten.Image {
	if i < 0 || i >= len(a.frames) {
		panic(fmt.Sprintf("render: atlas frame %d out of range [0, %d)", i, len(a.frames)))
	}
	return a.frames[i]
}
