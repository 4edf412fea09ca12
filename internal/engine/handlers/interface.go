package handlers

import "zappy-server/internal/domain"

// Sender абстрагирует рассылку от хендлеров: они не знают про сокеты
// и хаб, только про адресатов. GameService неявно реализует интерфейс.
type Sender interface {
	// Reply пишет строку инициатору команды
	Reply(line string)
	// ToPlayer пишет строку сессии, владеющей игроком
	ToPlayer(p *domain.Player, line string)
	// GUI рассылает строку всем наблюдателям
	GUI(line string)
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Game  *domain.Game
	Actor *domain.Player // тот, чья команда завершается
	Tick  int
	Out   Sender
}

// CompleteFunc - контракт обработчика завершения отложенной команды.
// Вызывается циклом движка на тике дедлайна; arg - аргумент команды
// (ресурс для Take/Set, текст для Broadcast).
type CompleteFunc func(ctx Context, arg string)
