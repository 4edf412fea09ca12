package systems

import "zappy-server/internal/domain"

// Requirement - условия ритуала повышения: сколько игроков текущего уровня
// должны стоять на клетке и сколько камней (linemate..thystame) на ней лежать
type Requirement struct {
	Players int
	Stones  [6]int
}

// Таблица требований по уровням (1->2 ... 7->8). Константа протокола.
var elevationTable = [7]Requirement{
	{1, [6]int{1, 0, 0, 0, 0, 0}},
	{2, [6]int{1, 1, 1, 0, 0, 0}},
	{2, [6]int{2, 0, 1, 0, 2, 0}},
	{4, [6]int{1, 1, 2, 0, 1, 0}},
	{4, [6]int{1, 2, 1, 3, 0, 0}},
	{6, [6]int{1, 2, 3, 0, 1, 0}},
	{6, [6]int{2, 2, 2, 2, 2, 1}},
}

// RequirementFor возвращает требования для перехода с уровня level.
// false для уровней вне диапазона 1..7.
func RequirementFor(level int) (Requirement, bool) {
	if level < domain.MinLevel || level >= domain.MaxLevel {
		return Requirement{}, false
	}
	return elevationTable[level-1], true
}

func hasStones(tile *domain.Tile, req Requirement) bool {
	for i := 0; i < 6; i++ {
		// камни начинаются с индекса 1 (после еды)
		if tile.Resources[i+1] < req.Stones[i] {
			return false
		}
	}
	return true
}

// EligibleStarters - игроки клетки нужного уровня, еще не участвующие
// в ритуале. Порядок - по возрастанию ID.
func EligibleStarters(g *domain.Game, x, y, level int) []*domain.Player {
	var out []*domain.Player
	for _, id := range g.Map.Tile(x, y).PlayerIDs() {
		p := g.PlayerByID(id)
		if p != nil && p.Alive && p.Level == level && !p.IsIncanting {
			out = append(out, p)
		}
	}
	return out
}

// incantingAt - участники активного ритуала данного уровня на клетке
func incantingAt(g *domain.Game, x, y, level int) []*domain.Player {
	var out []*domain.Player
	for _, id := range g.Map.Tile(x, y).PlayerIDs() {
		p := g.PlayerByID(id)
		if p != nil && p.Alive && p.Level == level && p.IsIncanting {
			out = append(out, p)
		}
	}
	return out
}

// CanStartElevation - синхронная проверка при выдаче команды Incantation
func CanStartElevation(g *domain.Game, x, y, level int) bool {
	req, ok := RequirementFor(level)
	if !ok {
		return false
	}
	if len(EligibleStarters(g, x, y, level)) < req.Players {
		return false
	}
	return hasStones(g.Map.Tile(x, y), req)
}

// BeginElevation помечает участников ритуала и возвращает их ID.
// Ресурсы НЕ списываются: списание происходит только при успешном
// завершении (все или ничего).
func BeginElevation(g *domain.Game, x, y, level int) []int {
	req, _ := RequirementFor(level)
	starters := EligibleStarters(g, x, y, level)
	if len(starters) > req.Players {
		starters = starters[:req.Players]
	}

	ids := make([]int, 0, len(starters))
	for _, p := range starters {
		p.IsIncanting = true
		ids = append(ids, p.ID)
	}
	return ids
}

// AbortElevation досрочно прекращает ритуал на клетке: снимает флаг
// со всех участников без списания ресурсов и повышений. Используется,
// когда инициатор выбывает (смерть, дисконнект) и обработчик завершения
// уже никогда не вызовется. Возвращает бывших участников.
func AbortElevation(g *domain.Game, x, y, level int) []*domain.Player {
	participants := incantingAt(g, x, y, level)
	for _, p := range participants {
		p.IsIncanting = false
	}
	return participants
}

// CompleteElevation перепроверяет условия на момент завершения ритуала
// (они могли измениться за 300 тиков). При успехе списывает ровно
// требуемые ресурсы и повышает всех участников; при провале не трогает
// ничего. Возвращает повышенных игроков и флаг успеха.
func CompleteElevation(g *domain.Game, x, y, level int) ([]*domain.Player, bool) {
	req, ok := RequirementFor(level)
	if !ok {
		return nil, false
	}

	participants := incantingAt(g, x, y, level)
	tile := g.Map.Tile(x, y)

	success := len(participants) >= req.Players && hasStones(tile, req)

	if success {
		for i := 0; i < 6; i++ {
			tile.Resources[i+1] -= req.Stones[i]
		}
		for _, p := range participants {
			p.Level++
		}
	}

	// Флаг ритуала снимается в любом исходе
	for _, p := range participants {
		p.IsIncanting = false
	}

	if !success {
		return nil, false
	}
	return participants, true
}
