// pkg/tilemap/tile.go
package tilemap

import "fmt"

// Side - ориентация тайла пола, определяет спрайт в атласе
type Side int

const (
	// Блоки высотой в два тайла
	TopLeft Side = iota
	Top
	TopRight
	BotLeft
	Bot
	BotRight

	// Однослойные блоки
	Left
	Middle
	Right

	// Одиночный блок
	Standalone
)

var sideNames = [...]string{
	TopLeft:    "TopLeft",
	Top:        "Top",
	TopRight:   "TopRight",
	BotLeft:    "BotLeft",
	Bot:        "Bot",
	BotRight:   "BotRight",
	Left:       "Left",
	Middle:     "Middle",
	Right:      "Right",
	Standalone: "Standalone",
}

func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// Index возвращает индекс спрайта в атласе тайлов (6x2).
func (s Side) Index() int {
	switch s {
	case TopLeft:
		return 0
	case Top:
		return 1
	case TopRight:
		return 2
	case Left:
		return 3
	case Middle:
		return 4
	case Right:
		return 5
	case BotLeft:
		return 6
	case Bot:
		return 7
	case BotRight:
		return 8
	case Standalone:
		return 9
	}
	panic(fmt.Sprintf("tilemap: unknown side %d", int(s)))
}

// IsTop сообщает, является ли сторона верхней поверхностью,
// на которой игрок может стоять и от которой может прыгать.
// Нижние половины двухэтажных блоков такими не считаются.
func (s Side) IsTop() bool {
	switch s {
	case BotLeft, Bot, BotRight:
		return false
	}
	return true
}

// Tile - клетка уровня: пустая или пол с ориентацией
type Tile struct {
	Floor bool
	Side  Side
}

// Empty - пустая клетка
var Empty = Tile{}

// Floor создаёт клетку пола с заданной ориентацией
func Floor(side Side) Tile {
	return Tile{Floor: true, Side: side}
}

// IsTopFloor - пол с верхней поверхностью
func (t Tile) IsTopFloor() bool {
	return t.Floor && t.Side.IsTop()
}

// TileFromRune переводит символ из файла уровня в тайл.
// Неизвестные символы дают пустую клетку.
func TileFromRune(c rune) Tile {
	switch c {
	case '[':
		return Floor(Left)
	case '=':
		return Floor(Middle)
	case ']':
		return Floor(Right)
	case '¬':
		return Floor(TopRight)
	case '4':
		return Floor(TopLeft)
	case '-':
		return Floor(Top)
	case 'L':
		return Floor(BotLeft)
	case '_':
		return Floor(Bot)
	case '/':
		return Floor(BotRight)
	case '•':
		return Floor(Standalone)
	}
	return Empty
}
