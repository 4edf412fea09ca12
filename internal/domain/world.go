package domain

// Map - тороидальная прямоугольная карта. Размеры фиксированы на все время
// жизни сервера, клетки никогда не уничтожаются по отдельности.
type Map struct {
	Width  int
	Height int
	tiles  []Tile // row-major: индекс Y*Width+X
}

func NewMap(width, height int) *Map {
	return &Map{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}
}

// Wrap приводит произвольные координаты к карте (евклидов модуль).
// Отрицательные смещения корректно заворачиваются - это критично для
// конуса зрения и движения.
func (m *Map) Wrap(x, y int) (int, int) {
	x = ((x % m.Width) + m.Width) % m.Width
	y = ((y % m.Height) + m.Height) % m.Height
	return x, y
}

// Tile возвращает клетку по координатам. Координаты заворачиваются,
// операция не может провалиться.
func (m *Map) Tile(x, y int) *Tile {
	x, y = m.Wrap(x, y)
	return &m.tiles[y*m.Width+x]
}

// InBounds проверяет координаты без заворачивания (для GUI-команды bct)
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// AddPlayer регистрирует игрока на клетке
func (m *Map) AddPlayer(x, y, playerID int) {
	m.Tile(x, y).addPlayer(playerID)
}

// RemovePlayer убирает игрока с клетки
func (m *Map) RemovePlayer(x, y, playerID int) {
	m.Tile(x, y).removePlayer(playerID)
}

// AddEgg регистрирует яйцо на клетке
func (m *Map) AddEgg(x, y, eggID int) {
	m.Tile(x, y).addEgg(eggID)
}

// RemoveEgg убирает яйцо с клетки
func (m *Map) RemoveEgg(x, y, eggID int) {
	m.Tile(x, y).removeEgg(eggID)
}

// TileCount - общее количество клеток (для расчета целевых плотностей)
func (m *Map) TileCount() int {
	return m.Width * m.Height
}

// TotalResource считает суммарное количество ресурса по всей карте
func (m *Map) TotalResource(r Resource) int {
	total := 0
	for i := range m.tiles {
		total += m.tiles[i].Resources[r]
	}
	return total
}
