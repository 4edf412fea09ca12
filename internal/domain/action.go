package domain

// ActionType - внутренний числовой идентификатор команды AI-клиента
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionForward
	ActionRight
	ActionLeft
	ActionLook
	ActionInventory
	ActionBroadcast
	ActionConnectNbr
	ActionFork
	ActionEject
	ActionTake
	ActionSet
	ActionIncantation
)

// Маппинг протокол -> Domain. Команды Zappy чувствительны к регистру.
var actionStringToCmd = map[string]ActionType{
	"Forward":     ActionForward,
	"Right":       ActionRight,
	"Left":        ActionLeft,
	"Look":        ActionLook,
	"Inventory":   ActionInventory,
	"Broadcast":   ActionBroadcast,
	"Connect_nbr": ActionConnectNbr,
	"Fork":        ActionFork,
	"Eject":       ActionEject,
	"Take":        ActionTake,
	"Set":         ActionSet,
	"Incantation": ActionIncantation,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionForward:     "Forward",
	ActionRight:       "Right",
	ActionLeft:        "Left",
	ActionLook:        "Look",
	ActionInventory:   "Inventory",
	ActionBroadcast:   "Broadcast",
	ActionConnectNbr:  "Connect_nbr",
	ActionFork:        "Fork",
	ActionEject:       "Eject",
	ActionTake:        "Take",
	ActionSet:         "Set",
	ActionIncantation: "Incantation",
}

// Длительности команд во временных единицах. Один тик сервера равен одной
// временной единице (1/freq секунды реального времени).
var actionDurations = map[ActionType]int{
	ActionForward:     7,
	ActionRight:       7,
	ActionLeft:        7,
	ActionLook:        7,
	ActionInventory:   1,
	ActionBroadcast:   7,
	ActionConnectNbr:  0, // единственная мгновенная команда
	ActionFork:        42,
	ActionEject:       7,
	ActionTake:        7,
	ActionSet:         7,
	ActionIncantation: 300,
}

// ParseAction конвертирует глагол команды в ActionType
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[s]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// Duration возвращает длительность команды в тиках
func (a ActionType) Duration() int {
	return actionDurations[a]
}

// PendingAction - отложенный эффект команды. Вместо повторного парсинга
// строки (как делают наивные реализации) храним типизированный вариант.
type PendingAction struct {
	Kind     ActionType
	Arg      string // аргумент Take/Set/Broadcast, пустой для остальных
	IssuedAt int    // тик, на котором команда принята
	Duration int    // тиков до завершения
}

// Due сообщает, настал ли тик завершения
func (p *PendingAction) Due(now int) bool {
	return now >= p.IssuedAt+p.Duration
}
