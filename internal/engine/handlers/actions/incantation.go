package actions

import (
	"zappy-server/internal/engine/handlers"
	"zappy-server/internal/systems"
	"zappy-server/pkg/proto"
)

// StartIncantation - синхронная часть команды Incantation. Проверяет
// условия на момент выдачи; при успехе помечает участников, отвечает
// каждому "Elevation underway" и объявляет ритуал наблюдателям.
// false - условия не выполнены, команду планировать не нужно.
func StartIncantation(ctx handlers.Context) bool {
	x, y, level := ctx.Actor.X, ctx.Actor.Y, ctx.Actor.Level
	if !systems.CanStartElevation(ctx.Game, x, y, level) {
		return false
	}

	ids := systems.BeginElevation(ctx.Game, x, y, level)
	for _, id := range ids {
		if p := ctx.Game.PlayerByID(id); p != nil {
			ctx.Out.ToPlayer(p, proto.ElevationUnderway)
		}
	}
	ctx.Out.GUI(proto.Pic(x, y, level, ids))
	return true
}

// HandleIncantation - завершение ритуала через 300 тиков. Условия
// перепроверяются: участники могли уйти, умереть, камни могли забрать.
func HandleIncantation(ctx handlers.Context, _ string) {
	x, y, level := ctx.Actor.X, ctx.Actor.Y, ctx.Actor.Level

	leveled, ok := systems.CompleteElevation(ctx.Game, x, y, level)
	if !ok {
		ctx.Out.Reply(proto.KO)
		ctx.Out.GUI(proto.Pie(x, y, 0))
		return
	}

	for _, p := range leveled {
		ctx.Out.ToPlayer(p, proto.CurrentLevel(p.Level))
		ctx.Out.GUI(proto.Plv(p.ID, p.Level))
	}
	ctx.Out.GUI(proto.Pie(x, y, 1))
	ctx.Out.GUI(proto.Bct(x, y, ctx.Game.Map.Tile(x, y).Resources))

	// Победа проверяется после каждого успешного ритуала
	if winner := ctx.Game.CheckVictory(); winner != nil {
		ctx.Game.Over = true
		ctx.Game.Winner = winner.Name
		ctx.Out.GUI(proto.Seg(winner.Name))
	}
}
