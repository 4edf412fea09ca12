package engine

import (
	"strconv"
	"strings"

	"zappy-server/internal/domain"
	"zappy-server/pkg/logger"
	"zappy-server/pkg/proto"
)

// handleGUICommand - запросы наблюдателя. Неизвестная команда - "suc",
// некорректные параметры - "sbp".
func (s *GameService) handleGUICommand(sess *ClientSession, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		s.Hub.SendTo(sess.ID, proto.Suc)
		return
	}

	switch fields[0] {
	case "msz":
		s.Hub.SendTo(sess.ID, proto.Msz(s.game.Map.Width, s.game.Map.Height))

	case "bct":
		if len(fields) != 3 {
			s.Hub.SendTo(sess.ID, proto.Sbp)
			return
		}
		x, errX := strconv.Atoi(fields[1])
		y, errY := strconv.Atoi(fields[2])
		if errX != nil || errY != nil || !s.game.Map.InBounds(x, y) {
			s.Hub.SendTo(sess.ID, proto.Sbp)
			return
		}
		s.Hub.SendTo(sess.ID, proto.Bct(x, y, s.game.Map.Tile(x, y).Resources))

	case "mct":
		s.sendFullMap(sess.ID)

	case "tna":
		for _, t := range s.game.Teams {
			s.Hub.SendTo(sess.ID, proto.Tna(t.Name))
		}

	case "ppo":
		if p := s.playerRef(fields); p != nil {
			s.Hub.SendTo(sess.ID, proto.Ppo(p.ID, p.X, p.Y, p.Orientation))
		} else {
			s.Hub.SendTo(sess.ID, proto.Sbp)
		}

	case "plv":
		if p := s.playerRef(fields); p != nil {
			s.Hub.SendTo(sess.ID, proto.Plv(p.ID, p.Level))
		} else {
			s.Hub.SendTo(sess.ID, proto.Sbp)
		}

	case "pin":
		if p := s.playerRef(fields); p != nil {
			s.Hub.SendTo(sess.ID, proto.Pin(p.ID, p.X, p.Y, p.Inventory))
		} else {
			s.Hub.SendTo(sess.ID, proto.Sbp)
		}

	case "sgt":
		s.Hub.SendTo(sess.ID, proto.Sgt(s.freq))

	case "sst":
		if len(fields) != 2 {
			s.Hub.SendTo(sess.ID, proto.Sbp)
			return
		}
		freq, err := strconv.Atoi(fields[1])
		if err != nil || freq < domain.MinFreq || freq > domain.MaxFreq {
			s.Hub.SendTo(sess.ID, proto.Sbp)
			return
		}
		s.freq = freq
		s.freqDirty = true
		s.Hub.BroadcastGUI(proto.Sst(freq))
		logger.Log.WithField("freq", freq).Info("⏱ Частота тиков изменена")

	default:
		s.Hub.SendTo(sess.ID, proto.Suc)
	}
}

// playerRef разбирает ссылку вида "#12" и находит игрока
func (s *GameService) playerRef(fields []string) *domain.Player {
	if len(fields) != 2 || !strings.HasPrefix(fields[1], "#") {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimPrefix(fields[1], "#"))
	if err != nil {
		return nil
	}
	return s.game.PlayerByID(id)
}

func (s *GameService) sendFullMap(sessionID string) {
	for y := 0; y < s.game.Map.Height; y++ {
		for x := 0; x < s.game.Map.Width; x++ {
			s.Hub.SendTo(sessionID, proto.Bct(x, y, s.game.Map.Tile(x, y).Resources))
		}
	}
}

// sendInitialDump выдает новому наблюдателю полное состояние мира:
// размер карты, частоту, содержимое клеток, команды, игроков и яйца
func (s *GameService) sendInitialDump(sess *ClientSession) {
	s.Hub.SendTo(sess.ID, proto.Msz(s.game.Map.Width, s.game.Map.Height))
	s.Hub.SendTo(sess.ID, proto.Sgt(s.freq))
	s.sendFullMap(sess.ID)

	for _, t := range s.game.Teams {
		s.Hub.SendTo(sess.ID, proto.Tna(t.Name))
	}

	for _, p := range s.game.Players {
		team := s.game.Teams[p.TeamID]
		s.Hub.SendTo(sess.ID, proto.Pnw(p.ID, p.X, p.Y, p.Orientation, p.Level, team.Name))
		s.Hub.SendTo(sess.ID, proto.Pin(p.ID, p.X, p.Y, p.Inventory))
		s.Hub.SendTo(sess.ID, proto.Plv(p.ID, p.Level))
	}

	for _, t := range s.game.Teams {
		for _, egg := range t.Eggs {
			layer := egg.LaidBy
			if layer == 0 {
				layer = -1 // стартовые яйца не имеют родителя
			}
			s.Hub.SendTo(sess.ID, proto.Enw(egg.ID, layer, egg.X, egg.Y))
		}
	}
}
