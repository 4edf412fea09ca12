package actions

import (
	"zappy-server/internal/engine/handlers"
	"zappy-server/internal/systems"
	"zappy-server/pkg/proto"
)

// HandleBroadcast доставляет звук каждому живому игроку с направлением,
// вычисленным от его позиции и ориентации
func HandleBroadcast(ctx handlers.Context, text string) {
	for _, p := range ctx.Game.Players {
		if p.ID == ctx.Actor.ID || !p.Alive {
			continue
		}
		dir := systems.SoundDirection(ctx.Game.Map, ctx.Actor, p)
		ctx.Out.ToPlayer(p, proto.Message(dir, text))
	}

	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Pbc(ctx.Actor.ID, text))
}
