package tilemap

import (
	"dr-fingers/internal/config"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestTileFromRune(t *testing.T) {
	cases := []struct {
		c    rune
		want Tile
	}{
		{'[', Floor(Left)},
		{'=', Floor(Middle)},
		{']', Floor(Right)},
		{'¬', Floor(TopRight)},
		{'4', Floor(TopLeft)},
		{'-', Floor(Top)},
		{'L', Floor(BotLeft)},
		{'_', Floor(Bot)},
		{'/', Floor(BotRight)},
		{'•', Floor(Standalone)},
		{' ', Empty},
		{'x', Empty},
		{'.', Empty},
	}
	for _, tc := range cases {
		if got := TileFromRune(tc.c); got != tc.want {
			t.Errorf("TileFromRune(%q) = %+v, want %+v", tc.c, got, tc.want)
		}
	}
}

func TestSideIndexAndTop(t *testing.T) {
	cases := []struct {
		side  Side
		index int
		top   bool
	}{
		{TopLeft, 0, true},
		{Top, 1, true},
		{TopRight, 2, true},
		{Left, 3, true},
		{Middle, 4, true},
		{Right, 5, true},
		{BotLeft, 6, false},
		{Bot, 7, false},
		{BotRight, 8, false},
		{Standalone, 9, true},
	}
	for _, tc := range cases {
		if got := tc.side.Index(); got != tc.index {
			t.Errorf("%v.Index() = %d, want %d", tc.side, got, tc.index)
		}
		if got := tc.side.IsTop(); got != tc.top {
			t.Errorf("%v.IsTop() = %v, want %v", tc.side, got, tc.top)
		}
	}
	if Empty.IsTopFloor() {
		t.Error("empty tile must not count as top floor")
	}
}

func TestParse(t *testing.T) {
	src := "    \n" +
		"4--¬\n" +
		"L__/\n" +
		"\n" +
		"[=]  •\n"

	level, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	checks := []struct {
		col, row int
		want     Tile
	}{
		{0, 0, Empty},
		{0, 1, Floor(TopLeft)},
		{1, 1, Floor(Top)},
		{3, 1, Floor(TopRight)},
		{0, 2, Floor(BotLeft)},
		{3, 2, Floor(BotRight)},
		{0, 3, Empty},
		{0, 4, Floor(Left)},
		{1, 4, Floor(Middle)},
		{2, 4, Floor(Right)},
		{5, 4, Floor(Standalone)},
		{4, 4, Empty},
		{19, 13, Empty},
	}
	for _, c := range checks {
		if got := level.At(c.col, c.row); got != c.want {
			t.Errorf("At(%d, %d) = %+v, want %+v", c.col, c.row, got, c.want)
		}
	}

	if got := len(level.FloorCells()); got != 12 {
		t.Errorf("FloorCells() len = %d, want 12", got)
	}
}

func TestParseHandlesCRLF(t *testing.T) {
	level, err := Parse([]byte("-\r\n=\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if level.At(0, 0) != Floor(Top) || level.At(0, 1) != Floor(Middle) {
		t.Fatalf("unexpected tiles: %+v %+v", level.At(0, 0), level.At(0, 1))
	}
	if level.At(1, 0) != Empty {
		t.Fatalf("carriage return must not produce a tile")
	}
}

func TestParseBounds(t *testing.T) {
	fullRow := strings.Repeat("=", config.LevelWidth)
	fullLevel := strings.Repeat(fullRow+"\n", config.LevelHeight)

	if _, err := Parse([]byte(fullLevel)); err != nil {
		t.Fatalf("level at exact bounds rejected: %v", err)
	}

	_, err := Parse([]byte(fullLevel + "=\n"))
	if !errors.Is(err, ErrTooTall) {
		t.Fatalf("extra row: got %v, want ErrTooTall", err)
	}
	if !strings.Contains(err.Error(), "height larger than max 14") {
		t.Errorf("unexpected message %q", err.Error())
	}

	_, err = Parse([]byte(fullRow + "=\n"))
	if !errors.Is(err, ErrTooWide) {
		t.Fatalf("extra column: got %v, want ErrTooWide", err)
	}

	// Многобайтовые символы считаются как одна клетка
	wide := strings.Repeat("•", config.LevelWidth)
	if _, err := Parse([]byte(wide)); err != nil {
		t.Fatalf("multi-byte row at exact width rejected: %v", err)
	}
}

func TestParseRejectsInvalidUTF8(t *testing.T) {
	if _, err := Parse([]byte{'-', 0xff, '\n'}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("got %v, want ErrInvalidUTF8", err)
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/a.lvl": {Data: []byte("---\n")},
		"levels/b.lvl": {Data: []byte(strings.Repeat("\n", config.LevelHeight+1))},
	}

	level, err := Load(fsys, "levels/a.lvl")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(level.FloorCells()); got != 3 {
		t.Errorf("floor cells = %d, want 3", got)
	}

	if _, err := Load(fsys, "levels/b.lvl"); !errors.Is(err, ErrTooTall) {
		t.Errorf("got %v, want ErrTooTall", err)
	}
	if _, err := Load(fsys, "levels/missing.lvl"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCellCenter(t *testing.T) {
	x, y := CellCenter(0, 0)
	wantX := -float64(config.ScreenWidth)/2 + config.TileSize/2
	wantY := float64(config.ScreenHeight)/2 - config.TileSize/2
	if x != wantX || y != wantY {
		t.Fatalf("CellCenter(0,0) = (%v,%v), want (%v,%v)", x, y, wantX, wantY)
	}
	x2, y2 := CellCenter(1, 1)
	if x2-x != config.TileSize || y-y2 != config.TileSize {
		t.Fatalf("cell pitch = (%v,%v), want %v", x2-x, y-y2, config.TileSize)
	}
}
