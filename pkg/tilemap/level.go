// pkg/tilemap/level.go
package tilemap

import (
	"bufio"
	"bytes"
	"dr-fingers/internal/config"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"unicode/utf8"
)

// Extension - расширение файлов уровней
const Extension = ".lvl"

var (
	ErrTooTall     = errors.New("level too tall")
	ErrTooWide     = errors.New("level too wide")
	ErrInvalidUTF8 = errors.New("level is not valid UTF-8")
)

// Level - сетка тайлов фиксированного размера, индексы [row][column]
type Level struct {
	Tiles [config.LevelHeight][config.LevelWidth]Tile
}

// NewLevel создаёт пустой уровень
func NewLevel() *Level {
	return &Level{}
}

// Width возвращает ширину уровня в тайлах
func (l *Level) Width() int { return config.LevelWidth }

// Height возвращает высоту уровня в тайлах
func (l *Level) Height() int { return config.LevelHeight }

// At возвращает тайл по координатам; за пределами сетки - пустой тайл.
func (l *Level) At(col, row int) Tile {
	if !l.Contains(col, row) {
		return Empty
	}
	return l.Tiles[row][col]
}

// Contains проверяет, лежат ли координаты внутри сетки
func (l *Level) Contains(col, row int) bool {
	return col >= 0 && col < config.LevelWidth && row >= 0 && row < config.LevelHeight
}

// Cell - тайл пола вместе с его координатами
type Cell struct {
	Col, Row int
	Tile     Tile
}

// FloorCells возвращает все непустые клетки в порядке строк
func (l *Level) FloorCells() []Cell {
	var cells []Cell
	for row := range l.Tiles {
		for col, tile := range l.Tiles[row] {
			if tile.Floor {
				cells = append(cells, Cell{Col: col, Row: row, Tile: tile})
			}
		}
	}
	return cells
}

// Parse разбирает текстовое описание уровня: одна строка файла - один ряд,
// один символ - одна клетка.
func Parse(data []byte) (*Level, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	level := NewLevel()
	scanner := bufio.NewScanner(bytes.NewReader(data))
	row := 0
	for scanner.Scan() {
		if row >= config.LevelHeight {
			return nil, fmt.Errorf("height larger than max %d: %w", config.LevelHeight, ErrTooTall)
		}
		col := 0
		for _, c := range scanner.Text() {
			if col >= config.LevelWidth {
				return nil, fmt.Errorf("width larger than max %d (row %d): %w", config.LevelWidth, row, ErrTooWide)
			}
			level.Tiles[row][col] = TileFromRune(c)
			col++
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan level: %w", err)
	}
	return level, nil
}

// Load читает и разбирает файл уровня из файловой системы
func Load(fsys fs.FS, path string) (*Level, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	level, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", path, err)
	}
	log.Printf("Loaded level %s (%d floor tiles)", path, len(level.FloorCells()))
	return level, nil
}

// CellCenter возвращает центр клетки в мировых координатах:
// начало координат в центре экрана, ось Y направлена вверх.
func CellCenter(col, row int) (x, y float64) {
	x = -float64(config.ScreenWidth)/2 + config.TileSize/2 + float64(col)*config.TileSize
	y = float64(config.ScreenHeight)/2 - config.TileSize/2 - float64(row)*config.TileSize
	return
}
