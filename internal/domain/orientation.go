package domain

// Orientation - направление взгляда игрока. Числовые значения 1-4
// совпадают с кодировкой протокола (ppo, pnw).
type Orientation int

const (
	North Orientation = iota + 1
	East
	South
	West
)

// TurnRight возвращает ориентацию после поворота по часовой стрелке
func (o Orientation) TurnRight() Orientation {
	return o%4 + 1
}

// TurnLeft возвращает ориентацию после поворота против часовой стрелки
func (o Orientation) TurnLeft() Orientation {
	return (o+2)%4 + 1
}

// Delta возвращает смещение одного шага вперед.
// Север - это -Y: строка 0 карты считается верхней.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

func (o Orientation) String() string {
	switch o {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}
