package systems

import (
	"math/rand"
	"testing"

	"zappy-server/internal/domain"
)

func newTestGame() *domain.Game {
	return domain.NewGame(10, 10, []string{"alpha"}, 0, rand.New(rand.NewSource(42)))
}

func placePlayer(g *domain.Game, id, x, y, level int) *domain.Player {
	p := domain.NewPlayer(id, "sess", 0, x, y, domain.North)
	p.Level = level
	g.Players = append(g.Players, p)
	g.Map.AddPlayer(x, y, id)
	return p
}

func TestCanStartElevationLevel1(t *testing.T) {
	g := newTestGame()
	placePlayer(g, 1, 3, 3, 1)

	if CanStartElevation(g, 3, 3, 1) {
		t.Error("ритуал без linemate не должен стартовать")
	}

	g.Map.Tile(3, 3).AddResource(domain.Linemate, 1)
	if !CanStartElevation(g, 3, 3, 1) {
		t.Error("1 игрок + 1 linemate должны разрешать ритуал 1->2")
	}
}

func TestCanStartElevationNeedsEnoughPlayers(t *testing.T) {
	g := newTestGame()
	placePlayer(g, 1, 5, 5, 2)
	tile := g.Map.Tile(5, 5)
	tile.AddResource(domain.Linemate, 1)
	tile.AddResource(domain.Deraumere, 1)
	tile.AddResource(domain.Sibur, 1)

	if CanStartElevation(g, 5, 5, 2) {
		t.Error("для 2->3 нужно два игрока уровня 2")
	}

	placePlayer(g, 2, 5, 5, 2)
	if !CanStartElevation(g, 5, 5, 2) {
		t.Error("условия 2->3 выполнены, а ритуал не стартует")
	}

	// игрок другого уровня не в счет
	placePlayer(g, 3, 5, 5, 3)
	if !CanStartElevation(g, 5, 5, 2) {
		t.Error("посторонний игрок уровня 3 не должен мешать ритуалу 2->3")
	}
}

func TestCompleteElevationConsumesExactly(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 0, 0, 1)
	tile := g.Map.Tile(0, 0)
	tile.AddResource(domain.Linemate, 2)

	BeginElevation(g, 0, 0, 1)
	leveled, ok := CompleteElevation(g, 0, 0, 1)
	if !ok {
		t.Fatal("ритуал должен завершиться успехом")
	}
	if len(leveled) != 1 || leveled[0].ID != 1 {
		t.Errorf("повышен не тот игрок: %v", leveled)
	}
	if p.Level != 2 {
		t.Errorf("уровень = %d, ожидался 2", p.Level)
	}
	if tile.Resources[domain.Linemate] != 1 {
		t.Errorf("списано не ровно 1 linemate: осталось %d", tile.Resources[domain.Linemate])
	}
	if p.IsIncanting {
		t.Error("флаг ритуала не снят")
	}
}

func TestCompleteElevationFailureKeepsResources(t *testing.T) {
	g := newTestGame()
	p := placePlayer(g, 1, 0, 0, 1)
	tile := g.Map.Tile(0, 0)
	tile.AddResource(domain.Linemate, 1)

	BeginElevation(g, 0, 0, 1)
	// камень украли за время ритуала
	tile.TakeResource(domain.Linemate)

	_, ok := CompleteElevation(g, 0, 0, 1)
	if ok {
		t.Fatal("ритуал без камня обязан провалиться")
	}
	if p.Level != 1 {
		t.Errorf("уровень изменился при провале: %d", p.Level)
	}
	if p.IsIncanting {
		t.Error("флаг ритуала не снят после провала")
	}
}

func TestCompleteElevationFailsIfParticipantLeft(t *testing.T) {
	g := newTestGame()
	placePlayer(g, 1, 2, 2, 2)
	p2 := placePlayer(g, 2, 2, 2, 2)
	tile := g.Map.Tile(2, 2)
	tile.AddResource(domain.Linemate, 1)
	tile.AddResource(domain.Deraumere, 1)
	tile.AddResource(domain.Sibur, 1)

	BeginElevation(g, 2, 2, 2)

	// участник ушел с клетки до завершения
	g.Map.RemovePlayer(p2.X, p2.Y, p2.ID)
	p2.X, p2.Y = 3, 2
	g.Map.AddPlayer(3, 2, p2.ID)

	if _, ok := CompleteElevation(g, 2, 2, 2); ok {
		t.Error("ритуал с ушедшим участником обязан провалиться")
	}
	if tile.Resources[domain.Linemate] != 1 {
		t.Error("ресурсы списаны при провале")
	}
}

func TestAbortElevationFreesParticipants(t *testing.T) {
	g := newTestGame()
	p1 := placePlayer(g, 1, 4, 4, 2)
	p2 := placePlayer(g, 2, 4, 4, 2)
	tile := g.Map.Tile(4, 4)
	tile.AddResource(domain.Linemate, 1)
	tile.AddResource(domain.Deraumere, 1)
	tile.AddResource(domain.Sibur, 1)

	BeginElevation(g, 4, 4, 2)
	former := AbortElevation(g, 4, 4, 2)

	if len(former) != 2 {
		t.Fatalf("освобождено %d участников, ожидалось 2", len(former))
	}
	if p1.IsIncanting || p2.IsIncanting {
		t.Error("флаги ритуала не сняты при отмене")
	}
	if p1.Level != 2 || p2.Level != 2 {
		t.Error("отмена не должна менять уровни")
	}
	if tile.Resources[domain.Linemate] != 1 {
		t.Error("отмена не должна списывать ресурсы")
	}
}

func TestRequirementForBounds(t *testing.T) {
	if _, ok := RequirementFor(0); ok {
		t.Error("уровень 0 вне таблицы")
	}
	if _, ok := RequirementFor(8); ok {
		t.Error("с максимального уровня повышаться некуда")
	}
	req, ok := RequirementFor(7)
	if !ok || req.Players != 6 || req.Stones != [6]int{2, 2, 2, 2, 2, 1} {
		t.Errorf("требования 7->8 не совпадают: %+v", req)
	}
}
