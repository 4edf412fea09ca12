package domain

import "math/rand"

// Egg - зарезервированный слот спавна команды. Создается на старте игры
// и командой Fork, потребляется при подключении нового AI-клиента.
type Egg struct {
	ID     int
	TeamID int
	X      int
	Y      int
	LaidBy int // ID игрока-родителя; 0 для стартовых яиц сервера
}

// Team - команда игроков. Доступные слоты подключения равны количеству
// живых яиц; Capacity/Connected - отдельная бухгалтерия одновременных
// клиентов, слот соединения освобождается при смерти или дисконнекте.
type Team struct {
	ID        int
	Name      string
	Capacity  int // clients_nb из конфигурации
	Connected int
	Eggs      []*Egg
}

func NewTeam(id int, name string, capacity int) *Team {
	return &Team{
		ID:       id,
		Name:     name,
		Capacity: capacity,
	}
}

// AvailableSlots - сколько клиентов еще могут подключиться
func (t *Team) AvailableSlots() int {
	return len(t.Eggs)
}

// AddEgg кладет новое яйцо (слот спавна)
func (t *Team) AddEgg(id, x, y int) *Egg {
	egg := &Egg{ID: id, TeamID: t.ID, X: x, Y: y}
	t.Eggs = append(t.Eggs, egg)
	return egg
}

// RemoveEgg убирает яйцо по ID. false, если такого яйца нет.
func (t *Team) RemoveEgg(id int) bool {
	for i, egg := range t.Eggs {
		if egg.ID == id {
			t.Eggs = append(t.Eggs[:i], t.Eggs[i+1:]...)
			return true
		}
	}
	return false
}

// ConsumeRandomEgg снимает и возвращает равновероятно выбранное яйцо.
// nil, если яиц нет - подключающийся клиент получает отказ "0".
func (t *Team) ConsumeRandomEgg(rng *rand.Rand) *Egg {
	if len(t.Eggs) == 0 {
		return nil
	}
	i := rng.Intn(len(t.Eggs))
	egg := t.Eggs[i]
	t.Eggs = append(t.Eggs[:i], t.Eggs[i+1:]...)
	return egg
}
