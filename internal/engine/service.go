package engine

import (
	"math/rand"
	"time"

	"zappy-server/internal/config"
	"zappy-server/internal/domain"
	"zappy-server/internal/engine/handlers"
	"zappy-server/internal/engine/handlers/actions"
	"zappy-server/internal/network"
	"zappy-server/internal/systems"
	"zappy-server/pkg/logger"
	"zappy-server/pkg/proto"
)

// Command - одна строка протокола, принятая транспортом
type Command struct {
	SessionID string
	Line      string
}

// Snapshot - срез состояния для отладочного эндпоинта.
// Собирается внутри цикла движка, поэтому всегда консистентен.
type Snapshot struct {
	Tick     int            `json:"tick"`
	Freq     int            `json:"freq"`
	Players  int            `json:"players"`
	Sessions int            `json:"sessions"`
	Over     bool           `json:"over"`
	Winner   string         `json:"winner,omitempty"`
	Slots    map[string]int `json:"team_slots"`
}

// GameService владеет всем игровым состоянием. Мутации происходят
// только в горутине Run: транспорт общается с движком через каналы,
// поэтому внутри нет ни одной блокировки.
type GameService struct {
	cfg  *config.Config
	game *domain.Game

	Hub     *network.Hub
	spawner *systems.Spawner

	JoinChan    chan string  // новое соединение (уже зарегистрировано в Hub)
	LeaveChan   chan string  // соединение закрылось
	CommandChan chan Command // входящие строки

	snapshotChan chan chan Snapshot

	sessions map[string]*ClientSession

	tick      int
	freq      int
	freqDirty bool // sst сменил частоту, тикеру нужен Reset

	handlers map[domain.ActionType]handlers.CompleteFunc

	quit chan struct{}
	done chan struct{}
}

func NewService(cfg *config.Config) *GameService {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &GameService{
		cfg:          cfg,
		game:         domain.NewGame(cfg.Width, cfg.Height, cfg.Teams, cfg.ClientsNb, rng),
		Hub:          network.NewHub(),
		spawner:      systems.NewSpawner(rng),
		JoinChan:     make(chan string, 64),
		LeaveChan:    make(chan string, 64),
		CommandChan:  make(chan Command, 256),
		snapshotChan: make(chan chan Snapshot),
		sessions:     make(map[string]*ClientSession),
		freq:         cfg.Freq,
		handlers:     make(map[domain.ActionType]handlers.CompleteFunc),
		quit:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	// Начальный посев ресурсов
	s.spawner.Replenish(s.game.Map)

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionForward] = actions.HandleForward
	s.handlers[domain.ActionRight] = actions.HandleRight
	s.handlers[domain.ActionLeft] = actions.HandleLeft
	s.handlers[domain.ActionLook] = actions.HandleLook
	s.handlers[domain.ActionInventory] = actions.HandleInventory
	s.handlers[domain.ActionBroadcast] = actions.HandleBroadcast
	s.handlers[domain.ActionFork] = actions.HandleFork
	s.handlers[domain.ActionEject] = actions.HandleEject
	s.handlers[domain.ActionTake] = actions.HandleTake
	s.handlers[domain.ActionSet] = actions.HandleSet
	s.handlers[domain.ActionIncantation] = actions.HandleIncantation
}

func (s *GameService) Start() {
	go s.Run()
}

// Stop просит цикл завершиться; Done закроется после чистки
func (s *GameService) Stop() {
	close(s.quit)
}

func (s *GameService) Done() <-chan struct{} {
	return s.done
}

// Run - единственная горутина, касающаяся игрового состояния
func (s *GameService) Run() {
	logger.Log.WithField("freq", s.freq).Info("🎮 Игровой цикл запущен")

	ticker := time.NewTicker(s.tickInterval())
	defer ticker.Stop()
	defer close(s.done)

	for {
		select {
		case <-s.quit:
			logger.Log.Info("Игровой цикл остановлен")
			return

		case id := <-s.JoinChan:
			s.handleJoin(id)

		case id := <-s.LeaveChan:
			s.handleLeave(id)

		case cmd := <-s.CommandChan:
			s.handleCommand(cmd)
			if s.freqDirty {
				s.freqDirty = false
				ticker.Reset(s.tickInterval())
			}

		case ch := <-s.snapshotChan:
			ch <- s.snapshot()

		case <-ticker.C:
			s.step()
		}
	}
}

func (s *GameService) tickInterval() time.Duration {
	return time.Second / time.Duration(s.freq)
}

// step - один тик симуляции. Фиксированный порядок фаз: жизнь,
// чистка мертвых, завершение отложенных действий, пополнение ресурсов.
func (s *GameService) step() {
	if s.game.Over {
		return
	}
	s.tick++

	// 1. Жизнь
	for _, p := range s.game.Players {
		p.ConsumeLife()
	}

	// 2. Чистка: умершие от голода
	var dead []*domain.Player
	for _, p := range s.game.Players {
		if !p.Alive {
			dead = append(dead, p)
		}
	}
	for _, p := range dead {
		s.reapPlayer(p)
	}

	// 3. Завершение действий (порядок - по возрастанию ID игрока)
	due := make([]*domain.Player, 0)
	for _, p := range s.game.Players {
		if p.Alive && p.Pending != nil && p.Pending.Due(s.tick) {
			due = append(due, p)
		}
	}
	for _, p := range due {
		pending := p.Pending
		p.Pending = nil
		if h, ok := s.handlers[pending.Kind]; ok {
			h(s.ctxFor(p), pending.Arg)
		}
		if s.game.Over {
			logger.Log.WithField("winner", s.game.Winner).Info("🏆 Игра окончена")
			return
		}
	}

	// 4. Пополнение ресурсов
	if s.tick%(domain.RespawnPeriodUnits*s.freq) == 0 {
		for _, c := range s.spawner.Replenish(s.game.Map) {
			s.Hub.BroadcastGUI(proto.Bct(c.X, c.Y, s.game.Map.Tile(c.X, c.Y).Resources))
		}
	}
}

// reapPlayer убирает умершего игрока из мира и закрывает его сессию
func (s *GameService) reapPlayer(p *domain.Player) {
	logger.Log.WithFields(map[string]interface{}{
		"player": p.ID,
		"tick":   s.tick,
	}).Info("💀 Игрок умер от голода")

	s.Hub.SendTo(p.SessionID, proto.Dead)
	s.Hub.BroadcastGUI(proto.Pdi(p.ID))
	s.abortIncantation(p)
	s.game.RemovePlayer(p.ID)
	s.Hub.BroadcastGUI(proto.Bct(p.X, p.Y, s.game.Map.Tile(p.X, p.Y).Resources))

	if sess, ok := s.sessions[p.SessionID]; ok {
		sess.PlayerID = 0
		s.dropSession(sess.ID)
	}
}

// abortIncantation освобождает участников ритуала, инициатор которого
// выбывает из игры: его обработчик завершения уже никогда не вызовется,
// без этого участники остались бы помеченными навсегда
func (s *GameService) abortIncantation(p *domain.Player) {
	if p.Pending == nil || p.Pending.Kind != domain.ActionIncantation {
		return
	}
	systems.AbortElevation(s.game, p.X, p.Y, p.Level)
	s.Hub.BroadcastGUI(proto.Pie(p.X, p.Y, 0))
}

func (s *GameService) handleJoin(sessionID string) {
	s.sessions[sessionID] = &ClientSession{ID: sessionID}
	s.Hub.SendTo(sessionID, proto.Welcome)
	logger.Log.WithField("session", sessionID).Debug("Новое соединение")
}

func (s *GameService) handleLeave(sessionID string) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}

	if sess.Kind == KindAI && sess.PlayerID != 0 {
		if p := s.game.PlayerByID(sess.PlayerID); p != nil {
			s.Hub.BroadcastGUI(proto.Pdi(p.ID))
			s.abortIncantation(p)
			s.game.RemovePlayer(p.ID)
			s.Hub.BroadcastGUI(proto.Bct(p.X, p.Y, s.game.Map.Tile(p.X, p.Y).Resources))
		}
	}

	delete(s.sessions, sessionID)
	s.Hub.Unregister(sessionID)
	logger.Log.WithField("session", sessionID).Debug("Соединение закрыто")
}

// dropSession рвет соединение со стороны движка: закрытие канала
// в хабе останавливает writePump, транспорт закрывает сокет
func (s *GameService) dropSession(sessionID string) {
	delete(s.sessions, sessionID)
	s.Hub.Unregister(sessionID)
}

func (s *GameService) ctxFor(p *domain.Player) handlers.Context {
	return handlers.Context{
		Game:  s.game,
		Actor: p,
		Tick:  s.tick,
		Out:   dispatchSender{svc: s, sessionID: p.SessionID},
	}
}

// Snapshot безопасно запрашивает срез состояния у цикла движка
func (s *GameService) Snapshot() Snapshot {
	ch := make(chan Snapshot, 1)
	select {
	case s.snapshotChan <- ch:
		return <-ch
	case <-s.done:
		return Snapshot{}
	}
}

func (s *GameService) snapshot() Snapshot {
	slots := make(map[string]int, len(s.game.Teams))
	for _, t := range s.game.Teams {
		slots[t.Name] = t.AvailableSlots()
	}
	return Snapshot{
		Tick:     s.tick,
		Freq:     s.freq,
		Players:  len(s.game.Players),
		Sessions: len(s.sessions),
		Over:     s.game.Over,
		Winner:   s.game.Winner,
		Slots:    slots,
	}
}

// dispatchSender реализует handlers.Sender поверх хаба
type dispatchSender struct {
	svc       *GameService
	sessionID string
}

func (d dispatchSender) Reply(line string) {
	d.svc.Hub.SendTo(d.sessionID, line)
}

func (d dispatchSender) ToPlayer(p *domain.Player, line string) {
	d.svc.Hub.SendTo(p.SessionID, line)
}

func (d dispatchSender) GUI(line string) {
	d.svc.Hub.BroadcastGUI(line)
}
