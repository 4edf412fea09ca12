package domain

import "testing"

func TestWrapNegativeCoordinates(t *testing.T) {
	m := NewMap(10, 5)

	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{10, 5, 0, 0},
		{-1, -1, 9, 4},
		{-11, -6, 9, 4},
		{23, 12, 3, 2},
	}
	for _, c := range cases {
		x, y := m.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), ожидалось (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestTileWrapsToSameCell(t *testing.T) {
	m := NewMap(10, 10)
	m.Tile(0, 0).AddResource(Food, 1)

	if m.Tile(10, 10).Resources[Food] != 1 {
		t.Error("Tile(10,10) не завернулась в Tile(0,0)")
	}
	if m.Tile(-10, -10).Resources[Food] != 1 {
		t.Error("Tile(-10,-10) не завернулась в Tile(0,0)")
	}
}

func TestInBoundsDoesNotWrap(t *testing.T) {
	m := NewMap(10, 5)
	if !m.InBounds(9, 4) {
		t.Error("(9,4) внутри карты")
	}
	if m.InBounds(10, 0) || m.InBounds(0, 5) || m.InBounds(-1, 0) {
		t.Error("InBounds завернул координаты")
	}
}

func TestTotalResource(t *testing.T) {
	m := NewMap(4, 4)
	m.Tile(0, 0).AddResource(Sibur, 2)
	m.Tile(3, 3).AddResource(Sibur, 1)

	if got := m.TotalResource(Sibur); got != 3 {
		t.Errorf("TotalResource = %d", got)
	}
}
