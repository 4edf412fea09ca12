package actions

import (
	"zappy-server/internal/engine/handlers"
	"zappy-server/pkg/proto"
)

func HandleForward(ctx handlers.Context, _ string) {
	ctx.Actor.MoveForward(ctx.Game.Map)
	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Ppo(ctx.Actor.ID, ctx.Actor.X, ctx.Actor.Y, ctx.Actor.Orientation))
}

func HandleRight(ctx handlers.Context, _ string) {
	ctx.Actor.Turn(1)
	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Ppo(ctx.Actor.ID, ctx.Actor.X, ctx.Actor.Y, ctx.Actor.Orientation))
}

func HandleLeft(ctx handlers.Context, _ string) {
	ctx.Actor.Turn(-1)
	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Ppo(ctx.Actor.ID, ctx.Actor.X, ctx.Actor.Y, ctx.Actor.Orientation))
}
