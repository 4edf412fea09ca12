package domain

import "sort"

// Tile - одна клетка карты: счетчики ресурсов плюс списки обитателей.
// Инвариант: счетчики никогда не уходят в минус; наборы игроков и яиц
// всегда согласованы с реестрами Game (клетка не ссылается на мертвых).
type Tile struct {
	Resources [ResourceCount]int
	players   map[int]struct{}
	eggs      map[int]struct{}
}

// AddResource добавляет n единиц ресурса
func (t *Tile) AddResource(r Resource, n int) {
	t.Resources[r] += n
}

// TakeResource снимает одну единицу. false, если ресурса нет.
func (t *Tile) TakeResource(r Resource) bool {
	if t.Resources[r] <= 0 {
		return false
	}
	t.Resources[r]--
	return true
}

func (t *Tile) addPlayer(id int) {
	if t.players == nil {
		t.players = make(map[int]struct{})
	}
	t.players[id] = struct{}{}
}

func (t *Tile) removePlayer(id int) {
	delete(t.players, id)
}

func (t *Tile) addEgg(id int) {
	if t.eggs == nil {
		t.eggs = make(map[int]struct{})
	}
	t.eggs[id] = struct{}{}
}

func (t *Tile) removeEgg(id int) {
	delete(t.eggs, id)
}

// PlayerIDs возвращает обитателей клетки в порядке возрастания ID.
// Сортировка нужна для детерминированного порядка рассылок.
func (t *Tile) PlayerIDs() []int {
	ids := make([]int, 0, len(t.players))
	for id := range t.players {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// EggIDs возвращает яйца на клетке в порядке возрастания ID
func (t *Tile) EggIDs() []int {
	ids := make([]int, 0, len(t.eggs))
	for id := range t.eggs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// PlayerCount - количество игроков на клетке
func (t *Tile) PlayerCount() int {
	return len(t.players)
}
