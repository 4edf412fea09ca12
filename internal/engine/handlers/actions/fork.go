package actions

import (
	"zappy-server/internal/engine/handlers"
	"zappy-server/pkg/proto"
)

// HandleFork откладывает яйцо на клетке игрока: команда получает
// дополнительный слот подключения
func HandleFork(ctx handlers.Context, _ string) {
	team := ctx.Game.Teams[ctx.Actor.TeamID]

	egg := team.AddEgg(ctx.Game.NextEggID(), ctx.Actor.X, ctx.Actor.Y)
	egg.LaidBy = ctx.Actor.ID
	ctx.Game.Map.AddEgg(egg.X, egg.Y, egg.ID)

	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Pfk(ctx.Actor.ID))
	ctx.Out.GUI(proto.Enw(egg.ID, ctx.Actor.ID, egg.X, egg.Y))
}
