package domain

// Player - игровой аватар, привязанный к одной AI-сессии.
// Создается при успешной аутентификации из яйца команды, уничтожается
// при смерти или разрыве соединения (инвентарь высыпается на клетку).
type Player struct {
	ID        int
	SessionID string // владеющее соединение
	TeamID    int

	X           int
	Y           int
	Orientation Orientation

	Level     int
	Inventory [ResourceCount]int

	LifeTicks   int
	Alive       bool
	IsIncanting bool

	// Pending - единственное незавершенное действие игрока.
	// Вторая команда при непустом Pending отклоняется с "ko".
	Pending *PendingAction
}

func NewPlayer(id int, sessionID string, teamID, x, y int, o Orientation) *Player {
	p := &Player{
		ID:          id,
		SessionID:   sessionID,
		TeamID:      teamID,
		X:           x,
		Y:           y,
		Orientation: o,
		Level:       MinLevel,
		LifeTicks:   InitialLifeTicks,
		Alive:       true,
	}
	p.Inventory[Food] = InitialFood
	return p
}

// MoveForward делает шаг в текущем направлении с заворотом на торе.
// Членство в клетках обновляется атомарно с позицией: игрок ни на миг
// не отсутствует на карте и не присутствует на двух клетках.
func (p *Player) MoveForward(m *Map) {
	dx, dy := p.Orientation.Delta()
	nx, ny := m.Wrap(p.X+dx, p.Y+dy)

	m.RemovePlayer(p.X, p.Y, p.ID)
	p.X, p.Y = nx, ny
	m.AddPlayer(p.X, p.Y, p.ID)
}

// Turn поворачивает игрока: dir=+1 направо, dir=-1 налево
func (p *Player) Turn(dir int) {
	if dir > 0 {
		p.Orientation = p.Orientation.TurnRight()
	} else {
		p.Orientation = p.Orientation.TurnLeft()
	}
}

// ConsumeLife тратит один тик жизни. На нуле потребляется единица еды
// и счетчик сбрасывается на LifeUnitDuration; без еды игрок помечается
// мертвым (удаление выполняет движок на этапе чистки).
func (p *Player) ConsumeLife() {
	p.LifeTicks--
	if p.LifeTicks > 0 {
		return
	}
	if p.Inventory[Food] > 0 {
		p.Inventory[Food]--
		p.LifeTicks = LifeUnitDuration
		return
	}
	p.Alive = false
}

// TakeResource атомарно переносит единицу ресурса клетка -> инвентарь.
// false без мутации, если на клетке пусто.
func (p *Player) TakeResource(t *Tile, r Resource) bool {
	if !t.TakeResource(r) {
		return false
	}
	p.Inventory[r]++
	return true
}

// DropResource атомарно переносит единицу ресурса инвентарь -> клетка.
// false без мутации, если в инвентаре пусто.
func (p *Player) DropResource(t *Tile, r Resource) bool {
	if p.Inventory[r] <= 0 {
		return false
	}
	p.Inventory[r]--
	t.AddResource(r, 1)
	return true
}
