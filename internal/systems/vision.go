package systems

import (
	"strings"

	"zappy-server/internal/domain"
)

// VisibleTiles возвращает содержимое конуса зрения игрока: level+1 рядов
// вперед, ряд d содержит 2d+1 клеток (смещения -d..d), с заворотом на торе.
// Каждая клетка - строка из токенов "player" (по одному на обитателя)
// и имен ресурсов (по одному на единицу), через пробел.
func VisibleTiles(g *domain.Game, p *domain.Player) []string {
	tiles := make([]string, 0, (p.Level+1)*(p.Level+1))

	for row := 0; row <= p.Level; row++ {
		for offset := -row; offset <= row; offset++ {
			dx, dy := rotateOffset(p.Orientation, offset, row)
			tile := g.Map.Tile(p.X+dx, p.Y+dy)
			tiles = append(tiles, describeTile(tile))
		}
	}
	return tiles
}

// rotateOffset переводит (боковое смещение, дистанция вперед) в смещение
// по карте с учетом ориентации смотрящего
func rotateOffset(o domain.Orientation, lateral, distance int) (dx, dy int) {
	switch o {
	case domain.North:
		return lateral, -distance
	case domain.East:
		return distance, lateral
	case domain.South:
		return -lateral, distance
	case domain.West:
		return -distance, -lateral
	}
	return 0, 0
}

func describeTile(tile *domain.Tile) string {
	var tokens []string
	for range tile.PlayerIDs() {
		tokens = append(tokens, "player")
	}
	for r := 0; r < domain.ResourceCount; r++ {
		for n := 0; n < tile.Resources[r]; n++ {
			tokens = append(tokens, domain.Resource(r).String())
		}
	}
	return strings.Join(tokens, " ")
}
