package domain

import "math/rand"

// Game - агрегат всего игрового состояния: карта, команды, живые игроки.
// Мутируется только из цикла движка (единственная точка сериализации),
// поэтому блокировок здесь нет.
type Game struct {
	Map     *Map
	Teams   []*Team
	Players []*Player // всегда в порядке возрастания ID (ID монотонные)

	Rng *rand.Rand

	nextPlayerID int
	nextEggID    int

	// Терминальное состояние: после победы мутации геймплея прекращаются
	Over   bool
	Winner string
}

// NewGame создает мир: команды и стартовые яйца (clients_nb штук на команду,
// на случайных клетках). Начальный посев ресурсов делает спавнер движка.
func NewGame(width, height int, teamNames []string, clientsNb int, rng *rand.Rand) *Game {
	g := &Game{
		Map:          NewMap(width, height),
		Rng:          rng,
		nextPlayerID: 1,
		nextEggID:    1,
	}

	for i, name := range teamNames {
		team := NewTeam(i, name, clientsNb)
		for j := 0; j < clientsNb; j++ {
			x := rng.Intn(width)
			y := rng.Intn(height)
			egg := team.AddEgg(g.nextEggID, x, y)
			g.nextEggID++
			g.Map.AddEgg(egg.X, egg.Y, egg.ID)
		}
		g.Teams = append(g.Teams, team)
	}

	return g
}

// TeamByName ищет команду по имени (имена уникальны)
func (g *Game) TeamByName(name string) *Team {
	for _, t := range g.Teams {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// PlayerByID ищет живого игрока по ID
func (g *Game) PlayerByID(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NextEggID выдает следующий монотонный ID яйца (для Fork)
func (g *Game) NextEggID() int {
	id := g.nextEggID
	g.nextEggID++
	return id
}

// HatchPlayer превращает случайное яйцо команды в игрока для сессии.
// Возвращает игрока и ID потребленного яйца; (nil, 0) если слотов нет.
func (g *Game) HatchPlayer(sessionID string, team *Team) (*Player, int) {
	egg := team.ConsumeRandomEgg(g.Rng)
	if egg == nil {
		return nil, 0
	}
	g.Map.RemoveEgg(egg.X, egg.Y, egg.ID)

	orientation := Orientation(g.Rng.Intn(4) + 1)
	p := NewPlayer(g.nextPlayerID, sessionID, team.ID, egg.X, egg.Y, orientation)
	g.nextPlayerID++

	g.Players = append(g.Players, p)
	g.Map.AddPlayer(p.X, p.Y, p.ID)
	team.Connected++

	return p, egg.ID
}

// RemovePlayer уничтожает игрока: снимает с клетки, высыпает инвентарь
// на нее же (мировые итоги ресурсов не меняются), освобождает слот
// соединения команды. Отложенное действие при этом отменяется само собой -
// обработчик завершения для удаленного игрока никогда не вызовется.
func (g *Game) RemovePlayer(id int) *Player {
	idx := -1
	for i, p := range g.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	p := g.Players[idx]
	g.Map.RemovePlayer(p.X, p.Y, p.ID)

	tile := g.Map.Tile(p.X, p.Y)
	for r := 0; r < ResourceCount; r++ {
		tile.AddResource(Resource(r), p.Inventory[r])
		p.Inventory[r] = 0
	}

	if p.TeamID >= 0 && p.TeamID < len(g.Teams) {
		g.Teams[p.TeamID].Connected--
	}

	p.Alive = false
	p.Pending = nil
	g.Players = append(g.Players[:idx], g.Players[idx+1:]...)
	return p
}

// CheckVictory возвращает команду-победителя, если у какой-то команды
// не меньше VictoryPlayerCount игроков достигли максимального уровня
func (g *Game) CheckVictory() *Team {
	for _, team := range g.Teams {
		count := 0
		for _, p := range g.Players {
			if p.TeamID == team.ID && p.Level >= MaxLevel {
				count++
			}
		}
		if count >= VictoryPlayerCount {
			return team
		}
	}
	return nil
}
