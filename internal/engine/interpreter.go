package engine

import (
	"strings"

	"zappy-server/internal/domain"
	"zappy-server/internal/engine/handlers/actions"
	"zappy-server/pkg/logger"
	"zappy-server/pkg/proto"
)

// handleCommand маршрутизирует строку по состоянию сессии
func (s *GameService) handleCommand(cmd Command) {
	sess, ok := s.sessions[cmd.SessionID]
	if !ok {
		return // сессия уже закрыта, строка опоздала
	}

	switch sess.Kind {
	case KindUnknown:
		s.authenticate(sess, cmd.Line)
	case KindAI:
		s.handleAICommand(sess, cmd.Line)
	case KindGUI:
		s.handleGUICommand(sess, cmd.Line)
	}
}

// authenticate обрабатывает первую строку соединения: имя команды
// либо литерал GRAPHIC. Все остальное - разрыв.
func (s *GameService) authenticate(sess *ClientSession, line string) {
	if line == proto.GraphicTeam {
		sess.Kind = KindGUI
		s.Hub.MarkGUI(sess.ID)
		s.sendInitialDump(sess)
		logger.Log.WithField("session", sess.ID).Info("👁 Наблюдатель подключен")
		return
	}

	team := s.game.TeamByName(line)
	if team == nil {
		logger.Log.WithFields(map[string]interface{}{
			"session": sess.ID,
			"team":    line,
		}).Warn("Неизвестная команда при рукопожатии")
		s.Hub.SendTo(sess.ID, proto.KO)
		s.dropSession(sess.ID)
		return
	}

	player, eggID := s.game.HatchPlayer(sess.ID, team)
	if player == nil {
		// Слотов нет: протокольный отказ - "0" и разрыв
		s.Hub.SendTo(sess.ID, proto.Slots(0))
		s.dropSession(sess.ID)
		return
	}

	sess.Kind = KindAI
	sess.PlayerID = player.ID

	s.Hub.SendTo(sess.ID, proto.Slots(team.AvailableSlots()))
	s.Hub.SendTo(sess.ID, proto.MapSize(s.game.Map.Width, s.game.Map.Height))

	s.Hub.BroadcastGUI(proto.Ebo(eggID))
	s.Hub.BroadcastGUI(proto.Pnw(player.ID, player.X, player.Y,
		player.Orientation, player.Level, team.Name))

	logger.Log.WithFields(map[string]interface{}{
		"player": player.ID,
		"team":   team.Name,
	}).Info("🐣 Игрок вылупился")
}

// handleAICommand разбирает команду игрока. Контракт очереди:
// не более одного незавершенного действия, вторая команда - "ko".
func (s *GameService) handleAICommand(sess *ClientSession, line string) {
	player := s.game.PlayerByID(sess.PlayerID)
	if player == nil || !player.Alive {
		s.Hub.SendTo(sess.ID, proto.Dead)
		return
	}
	if s.game.Over {
		s.Hub.SendTo(sess.ID, proto.KO)
		return
	}

	verb, arg := splitCommand(line)
	kind := domain.ParseAction(verb)

	if kind == domain.ActionUnknown {
		s.Hub.SendTo(sess.ID, proto.KO)
		return
	}

	// Единственная мгновенная команда, очередь не занимает
	if kind == domain.ActionConnectNbr {
		team := s.game.Teams[player.TeamID]
		s.Hub.SendTo(sess.ID, proto.ConnectNbr(team.AvailableSlots()))
		return
	}

	// Участник ритуала занят на все 300 тиков, даже без своего Pending:
	// уйди он с клетки - ритуал бы развалился
	if player.Pending != nil || player.IsIncanting {
		s.Hub.SendTo(sess.ID, proto.KO)
		return
	}

	if (kind == domain.ActionTake || kind == domain.ActionSet) && arg == "" {
		s.Hub.SendTo(sess.ID, proto.KO)
		return
	}

	// Ритуал валидируется синхронно; при отказе ничего не планируем
	if kind == domain.ActionIncantation {
		if !actions.StartIncantation(s.ctxFor(player)) {
			s.Hub.SendTo(sess.ID, proto.KO)
			return
		}
	}

	player.Pending = &domain.PendingAction{
		Kind:     kind,
		Arg:      arg,
		IssuedAt: s.tick,
		Duration: kind.Duration(),
	}

	logger.Log.WithFields(map[string]interface{}{
		"player": player.ID,
		"action": kind.String(),
		"due":    s.tick + kind.Duration(),
	}).Debug("Действие запланировано")
}

// splitCommand отделяет глагол от аргумента (текст Broadcast может
// содержать пробелы, поэтому только первый разрез)
func splitCommand(line string) (verb, arg string) {
	parts := strings.SplitN(line, " ", 2)
	verb = parts[0]
	if len(parts) == 2 {
		arg = parts[1]
	}
	return verb, arg
}
