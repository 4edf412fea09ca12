package systems

import (
	"testing"

	"zappy-server/internal/domain"
)

func TestVisibleTilesLevel1Count(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 5, 5, 1)

	tiles := VisibleTiles(g, p)
	if len(tiles) != 4 {
		t.Fatalf("уровень 1 видит 4 клетки, получено %d", len(tiles))
	}
	// клетка 0 - собственная, на ней стоит сам игрок
	if tiles[0] != "player" {
		t.Errorf("клетка 0 = %q, ожидался \"player\"", tiles[0])
	}
}

func TestVisibleTilesNorthGeometry(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 5, 5, 1)
	p.Orientation = domain.North

	// ряд 1 для севера: (4,4) (5,4) (6,4) в порядке слева направо
	g.Map.Tile(4, 4).AddResource(domain.Linemate, 1)
	g.Map.Tile(5, 4).AddResource(domain.Food, 1)
	g.Map.Tile(6, 4).AddResource(domain.Thystame, 1)

	tiles := VisibleTiles(g, p)
	if tiles[1] != "linemate" || tiles[2] != "food" || tiles[3] != "thystame" {
		t.Errorf("геометрия ряда 1 нарушена: %v", tiles[1:])
	}
}

func TestVisibleTilesEastGeometry(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 5, 5, 1)
	p.Orientation = domain.East

	// для востока ряд 1: (6,4) (6,5) (6,6)
	g.Map.Tile(6, 4).AddResource(domain.Food, 1)
	g.Map.Tile(6, 6).AddResource(domain.Sibur, 1)

	tiles := VisibleTiles(g, p)
	if tiles[1] != "food" {
		t.Errorf("левая клетка ряда 1 = %q", tiles[1])
	}
	if tiles[2] != "" {
		t.Errorf("центр ряда 1 должен быть пуст, получено %q", tiles[2])
	}
	if tiles[3] != "sibur" {
		t.Errorf("правая клетка ряда 1 = %q", tiles[3])
	}
}

func TestVisibleTilesWrapsAroundEdge(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 0, 0, 1)
	p.Orientation = domain.North

	// клетка впереди заворачивается на нижний край карты
	g.Map.Tile(0, 9).AddResource(domain.Mendiane, 1)

	tiles := VisibleTiles(g, p)
	if tiles[2] != "mendiane" {
		t.Errorf("зрение не завернулось через край: %q", tiles[2])
	}
}

func TestVisibleTilesMultipleTokens(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 5, 5, 1)
	placePlayer(g, 2, 5, 4, 1)
	g.Map.Tile(5, 4).AddResource(domain.Food, 2)

	tiles := VisibleTiles(g, p)
	if tiles[2] != "player food food" {
		t.Errorf("клетка с игроком и едой = %q", tiles[2])
	}
}

func TestVisibleTilesCountGrowsWithLevel(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 5, 5, 3)

	// сумма 2d+1 для d=0..3 равна 16
	if n := len(VisibleTiles(g, p)); n != 16 {
		t.Errorf("уровень 3 видит 16 клеток, получено %d", n)
	}
}
