package systems

import (
	"math"

	"zappy-server/internal/domain"
)

// Таблица октант -> номер направления для каждой ориентации получателя.
// Октант 0 - восток, далее по часовой стрелке (+Y считается югом).
var soundDirectionTable = [4][8]int{
	{3, 2, 1, 4, 5, 6, 7, 8}, // North
	{5, 4, 3, 2, 1, 8, 7, 6}, // East
	{7, 6, 5, 4, 3, 2, 1, 8}, // South
	{1, 8, 7, 6, 5, 4, 3, 2}, // West
}

// SoundDirection вычисляет направление 1-8, с которого получатель слышит
// отправителя (0 - та же клетка). Путь звука - кратчайший на торе.
func SoundDirection(m *domain.Map, sender, receiver *domain.Player) int {
	dx := sender.X - receiver.X
	dy := sender.Y - receiver.Y

	// Заворот до кратчайшего пути
	if abs(dx) > m.Width/2 {
		if dx > 0 {
			dx -= m.Width
		} else {
			dx += m.Width
		}
	}
	if abs(dy) > m.Height/2 {
		if dy > 0 {
			dy -= m.Height
		} else {
			dy += m.Height
		}
	}

	if dx == 0 && dy == 0 {
		return 0
	}

	angle := math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi
	angle = math.Mod(angle+360, 360)

	octant := int((angle+22.5)/45) % 8
	return soundDirectionTable[receiver.Orientation-1][octant]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
