package systems

import (
	"math"
	"math/rand"

	"zappy-server/internal/domain"
)

// Spawner поддерживает ресурсы карты на целевых плотностях.
// Никогда не убирает ресурсы - только досыпает дефицит.
type Spawner struct {
	Rng *rand.Rand
}

func NewSpawner(rng *rand.Rand) *Spawner {
	return &Spawner{Rng: rng}
}

// Target - целевое количество единиц ресурса для карты данного размера
func Target(r domain.Resource, tileCount int) int {
	return int(math.Round(float64(tileCount) * domain.Densities[r]))
}

// TileChange - координаты клетки, затронутой пополнением
type TileChange struct {
	X int
	Y int
}

// Replenish досыпает каждый ресурс до целевого количества на случайные
// клетки (дубликаты допустимы). На пустой карте это начальный посев.
// Возвращает затронутые клетки для нотификаций bct наблюдателям.
func (s *Spawner) Replenish(m *domain.Map) []TileChange {
	var changed []TileChange
	seen := make(map[int]bool)

	for r := 0; r < domain.ResourceCount; r++ {
		kind := domain.Resource(r)
		deficit := Target(kind, m.TileCount()) - m.TotalResource(kind)

		for i := 0; i < deficit; i++ {
			x := s.Rng.Intn(m.Width)
			y := s.Rng.Intn(m.Height)
			m.Tile(x, y).AddResource(kind, 1)

			key := y*m.Width + x
			if !seen[key] {
				seen[key] = true
				changed = append(changed, TileChange{X: x, Y: y})
			}
		}
	}
	return changed
}
