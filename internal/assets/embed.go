package assets

import (
	"embed"
	"io/fs"
)

//go:embed data
var embedded embed.FS

// DataFS возвращает встроенные данные игры: уровни и определения
func DataFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

const (
	DefaultLevelPath = "levels/level0.lvl"
	DefinitionsPath  = "defs/game.json"
)
