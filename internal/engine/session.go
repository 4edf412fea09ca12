package engine

// SessionKind - роль соединения после аутентификации
type SessionKind uint8

const (
	KindUnknown SessionKind = iota // рукопожатие не завершено
	KindAI                         // клиент команды, управляет игроком
	KindGUI                        // наблюдатель
)

// ClientSession - состояние одного соединения с точки зрения движка.
// Принадлежит циклу движка; транспорт знает только SessionID.
type ClientSession struct {
	ID   string
	Kind SessionKind

	// PlayerID - аватар AI-сессии; 0 до аутентификации и после смерти
	PlayerID int
}
