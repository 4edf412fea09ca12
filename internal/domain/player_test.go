package domain

import "testing"

func TestMoveForwardWrapsAround(t *testing.T) {
	m := NewMap(10, 5)
	p := NewPlayer(1, "s", 0, 3, 2, North)
	m.AddPlayer(p.X, p.Y, p.ID)

	// полный оборот по вертикали возвращает в исходную точку
	for i := 0; i < 5; i++ {
		p.MoveForward(m)
	}
	if p.X != 3 || p.Y != 2 {
		t.Errorf("после оборота игрок в (%d,%d)", p.X, p.Y)
	}

	// членство в клетках следует за позицией
	if got := m.Tile(3, 2).PlayerIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("клетка (3,2) содержит %v", got)
	}
}

func TestMoveForwardUpdatesTileMembership(t *testing.T) {
	m := NewMap(10, 10)
	p := NewPlayer(1, "s", 0, 5, 5, East)
	m.AddPlayer(5, 5, 1)

	p.MoveForward(m)

	if len(m.Tile(5, 5).PlayerIDs()) != 0 {
		t.Error("игрок остался на исходной клетке")
	}
	if got := m.Tile(6, 5).PlayerIDs(); len(got) != 1 {
		t.Errorf("игрок не появился на (6,5): %v", got)
	}
}

func TestTurnFullCycle(t *testing.T) {
	p := NewPlayer(1, "s", 0, 0, 0, North)

	want := []Orientation{East, South, West, North}
	for i, w := range want {
		p.Turn(1)
		if p.Orientation != w {
			t.Fatalf("поворот %d: %v, ожидалось %v", i+1, p.Orientation, w)
		}
	}

	p.Turn(-1)
	if p.Orientation != West {
		t.Errorf("поворот налево из North: %v", p.Orientation)
	}
}

func TestConsumeLifeRefillsFromFood(t *testing.T) {
	p := NewPlayer(1, "s", 0, 0, 0, North)
	p.LifeTicks = 1
	p.Inventory[Food] = 2

	p.ConsumeLife()

	if !p.Alive {
		t.Fatal("игрок с едой умер")
	}
	if p.LifeTicks != LifeUnitDuration {
		t.Errorf("жизнь не сброшена: %d", p.LifeTicks)
	}
	if p.Inventory[Food] != 1 {
		t.Errorf("еда = %d", p.Inventory[Food])
	}
}

func TestConsumeLifeStarvation(t *testing.T) {
	p := NewPlayer(1, "s", 0, 0, 0, North)
	p.LifeTicks = 1
	p.Inventory[Food] = 0

	p.ConsumeLife()

	if p.Alive {
		t.Error("игрок без еды обязан умереть")
	}
}

func TestTakeDropConservation(t *testing.T) {
	m := NewMap(10, 10)
	p := NewPlayer(1, "s", 0, 0, 0, North)
	tile := m.Tile(0, 0)
	tile.AddResource(Linemate, 1)

	if !p.TakeResource(tile, Linemate) {
		t.Fatal("взять лежащий ресурс не удалось")
	}
	if tile.Resources[Linemate] != 0 || p.Inventory[Linemate] != 1 {
		t.Errorf("после Take: клетка %d, инвентарь %d", tile.Resources[Linemate], p.Inventory[Linemate])
	}

	if p.TakeResource(tile, Linemate) {
		t.Error("взятие с пустой клетки должно провалиться")
	}

	if !p.DropResource(tile, Linemate) {
		t.Fatal("выложить ресурс не удалось")
	}
	if tile.Resources[Linemate] != 1 || p.Inventory[Linemate] != 0 {
		t.Errorf("после Set: клетка %d, инвентарь %d", tile.Resources[Linemate], p.Inventory[Linemate])
	}

	if p.DropResource(tile, Linemate) {
		t.Error("выкладывание из пустого инвентаря должно провалиться")
	}
}

func TestNewPlayerInitialState(t *testing.T) {
	p := NewPlayer(7, "sess", 2, 1, 1, South)

	if p.Level != MinLevel {
		t.Errorf("уровень = %d", p.Level)
	}
	if p.LifeTicks != InitialLifeTicks {
		t.Errorf("жизнь = %d", p.LifeTicks)
	}
	if p.Inventory[Food] != InitialFood {
		t.Errorf("стартовая еда = %d", p.Inventory[Food])
	}
	if !p.Alive || p.IsIncanting || p.Pending != nil {
		t.Error("флаги нового игрока не в исходном состоянии")
	}
}
