package domain

// Жизнь и стартовый запас
const (
	// LifeUnitDuration - сколько тиков жизни дает одна единица еды
	LifeUnitDuration = 126
	// InitialLifeTicks - запас жизни новорожденного игрока (10 единиц еды вперед)
	InitialLifeTicks = 1260
	// InitialFood - стартовая еда в инвентаре
	InitialFood = 10
)

// Уровни и победа
const (
	MinLevel = 1
	MaxLevel = 8
	// VictoryPlayerCount - сколько игроков одной команды должны достичь
	// MaxLevel, чтобы команда выиграла
	VictoryPlayerCount = 6
)

// Ограничения конфигурации
const (
	MinMapSize = 10
	MaxMapSize = 100
	MinFreq    = 2
	MaxFreq    = 10000
)

// RespawnPeriodUnits - период пополнения ресурсов. Умножается на freq,
// то есть пополнение происходит раз в 20 секунд реального времени.
const RespawnPeriodUnits = 20
