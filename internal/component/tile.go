// component/tile.go
package component

import "dr-fingers/pkg/tilemap"

// Tile - компонент клетки уровня, превращённой в сущность
type Tile struct {
	Tile     tilemap.Tile
	Col, Row int
}
