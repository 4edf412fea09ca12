package network

import "sync"

// Hub занимается только рассылкой протокольных строк подписчикам.
// Строки уходят в личные буферизованные каналы; writePump каждого
// соединения дописывает "\n" и пишет в сокет.
type Hub struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan string
	// Подмножество подписчиков, помеченных как наблюдатели (GUI)
	guis map[string]bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan string),
		guis:        make(map[string]bool),
	}
}

// Register создает личный канал для сессии
func (h *Hub) Register(sessionID string) chan string {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := h.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan string, 256)
	h.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (h *Hub) Unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[sessionID]; ok {
		close(ch)
		delete(h.subscribers, sessionID)
	}
	delete(h.guis, sessionID)
}

// MarkGUI помечает сессию наблюдателем после аутентификации GRAPHIC
func (h *Hub) MarkGUI(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sessionID]; ok {
		h.guis[sessionID] = true
	}
}

// SendTo отправляет строку конкретной сессии (Unicast).
// Переполненный канал означает мертвого или безнадежно отставшего
// клиента - строка отбрасывается, движок не блокируется.
func (h *Hub) SendTo(sessionID string, line string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if ch, ok := h.subscribers[sessionID]; ok {
		select {
		case ch <- line:
		default:
		}
	}
}

// BroadcastGUI отправляет строку всем наблюдателям
func (h *Hub) BroadcastGUI(line string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id := range h.guis {
		if ch, ok := h.subscribers[id]; ok {
			select {
			case ch <- line:
			default:
			}
		}
	}
}

// HasSubscriber проверяет, жива ли еще сессия
func (h *Hub) HasSubscriber(sessionID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
