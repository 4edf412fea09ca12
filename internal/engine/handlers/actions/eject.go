package actions

import (
	"zappy-server/internal/domain"
	"zappy-server/internal/engine/handlers"
	"zappy-server/internal/systems"
	"zappy-server/pkg/proto"
)

// HandleEject выталкивает всех соседей по клетке на шаг в направлении
// взгляда актора и уничтожает лежащие на клетке яйца. "ok" - если хоть
// кто-то или что-то пострадало, иначе "ko".
func HandleEject(ctx handlers.Context, _ string) {
	x, y := ctx.Actor.X, ctx.Actor.Y
	ejected := false

	for _, id := range ctx.Game.Map.Tile(x, y).PlayerIDs() {
		if id == ctx.Actor.ID {
			continue
		}
		victim := ctx.Game.PlayerByID(id)
		if victim == nil || !victim.Alive {
			continue
		}

		// шаг в направлении взгляда актора, а не жертвы
		dx, dy := ctx.Actor.Orientation.Delta()
		nx, ny := ctx.Game.Map.Wrap(victim.X+dx, victim.Y+dy)
		ctx.Game.Map.RemovePlayer(victim.X, victim.Y, victim.ID)
		victim.X, victim.Y = nx, ny
		ctx.Game.Map.AddPlayer(victim.X, victim.Y, victim.ID)

		// Вытолкнутый выбывает из ритуала на этой клетке. Если он был
		// инициатором, ритуал обречен: остальных освобождаем сразу,
		// а его Pending завершится обычным провалом на новой клетке.
		victim.IsIncanting = false
		if victim.Pending != nil && victim.Pending.Kind == domain.ActionIncantation {
			systems.AbortElevation(ctx.Game, x, y, victim.Level)
			ctx.Out.GUI(proto.Pie(x, y, 0))
		}

		dir := systems.SoundDirection(ctx.Game.Map, ctx.Actor, victim)
		ctx.Out.ToPlayer(victim, proto.Eject(dir))
		ctx.Out.GUI(proto.Pex(victim.ID))
		ctx.Out.GUI(proto.Ppo(victim.ID, victim.X, victim.Y, victim.Orientation))
		ejected = true
	}

	for _, eggID := range ctx.Game.Map.Tile(x, y).EggIDs() {
		for _, team := range ctx.Game.Teams {
			if team.RemoveEgg(eggID) {
				ctx.Game.Map.RemoveEgg(x, y, eggID)
				ctx.Out.GUI(proto.Edi(eggID))
				ejected = true
				break
			}
		}
	}

	if ejected {
		ctx.Out.Reply(proto.OK)
	} else {
		ctx.Out.Reply(proto.KO)
	}
}
