package assets

import (
	"dr-fingers/internal/config"
	"dr-fingers/pkg/render"
	"dr-fingers/pkg/tilemap"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// tileSides - стороны в порядке их индексов в атласе
var tileSides = []tilemap.Side{
	tilemap.TopLeft, tilemap.Top, tilemap.TopRight,
	tilemap.Left, tilemap.Middle, tilemap.Right,
	tilemap.BotLeft, tilemap.Bot, tilemap.BotRight,
	tilemap.Standalone,
}

// buildTileAtlas рисует атлас тайлов 6x2 по 48x48
func buildTileAtlas() *render.Atlas {
	size := int(config.TileSize)
	img := ebiten.NewImage(size*config.TileAtlasColumns, size*config.TileAtlasRows)

	for _, side := range tileSides {
		r := render.FrameRect(side.Index(), config.TileAtlasColumns, size, size)
		x, y := float32(r.Min.X), float32(r.Min.Y)
		s := float32(size)

		base := config.TileBaseColor
		if !side.IsTop() {
			base = render.ScaleColor(base, 0.75)
		}
		vector.DrawFilledRect(img, x, y, s, s, base, false)

		// Светлая кромка сверху у поверхностей, на которых можно стоять
		if side.IsTop() {
			vector.DrawFilledRect(img, x, y, s, 6, config.TileTopColor, false)
		}

		// Тёмная кромка снизу у тех, под которыми ничего нет
		switch side {
		case tilemap.Left, tilemap.Middle, tilemap.Right, tilemap.Standalone,
			tilemap.BotLeft, tilemap.Bot, tilemap.BotRight:
			vector.DrawFilledRect(img, x, y+s-4, s, 4, render.DarkenColor(base), false)
		}

		// Боковые края
		switch side {
		case tilemap.TopLeft, tilemap.BotLeft, tilemap.Left, tilemap.Standalone:
			vector.DrawFilledRect(img, x, y, 3, s, config.TileStrokeColor, false)
		}
		switch side {
		case tilemap.TopRight, tilemap.BotRight, tilemap.Right, tilemap.Standalone:
			vector.DrawFilledRect(img, x+s-3, y, 3, s, config.TileStrokeColor, false)
		}

		// Решётка, как в тюремных тайлах
		for i := 1; i < 4; i++ {
			gx := x + s*float32(i)/4
			vector.StrokeLine(img, gx, y+8, gx, y+s-8, 1, render.DarkenColor(base), false)
		}
	}

	return render.NewAtlas(img, size, size, config.TileAtlasColumns, config.TileAtlasRows)
}

// buildPlayerAtlas рисует цикл бега собаки: 1 колонка x 10 кадров
func buildPlayerAtlas() *render.Atlas {
	w, h := config.PlayerFrameWidth, config.PlayerFrameHeight
	img := ebiten.NewImage(w, h*config.PlayerFrames)

	for i := 0; i < config.PlayerFrames; i++ {
		oy := float32(i * h)
		phase := 2 * math.Pi * float64(i) / config.PlayerFrames
		bob := float32(math.Sin(phase) * 1.5)

		// Лапы: передняя и задняя пара в противофазе
		front := float32(math.Sin(phase) * 5)
		back := float32(math.Sin(phase+math.Pi) * 5)
		drawLeg(img, 30+front, oy+22, config.PlayerAccentColor)
		drawLeg(img, 14+back, oy+22, config.PlayerAccentColor)

		// Туловище, голова, ухо, хвост
		vector.DrawFilledRect(img, 8, oy+12+bob, 28, 12, config.PlayerBodyColor, true)
		vector.DrawFilledCircle(img, 37, oy+11+bob, 7, config.PlayerBodyColor, true)
		vector.DrawFilledCircle(img, 34, oy+6+bob, 3, config.PlayerAccentColor, true)
		vector.DrawFilledCircle(img, 41, oy+10+bob, 1.2, color.Black, true)
		tail := float32(math.Cos(phase) * 3)
		vector.StrokeLine(img, 8, oy+14+bob, 2, oy+8+bob+tail, 2, config.PlayerBodyColor, true)
	}

	return render.NewAtlas(img, w, h, 1, config.PlayerFrames)
}

func drawLeg(img *ebiten.Image, x, y float32, clr color.Color) {
	vector.StrokeLine(img, x, y, x, y+10, 3, clr, true)
}
