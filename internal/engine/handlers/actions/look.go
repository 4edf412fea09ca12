package actions

import (
	"zappy-server/internal/engine/handlers"
	"zappy-server/internal/systems"
	"zappy-server/pkg/proto"
)

func HandleLook(ctx handlers.Context, _ string) {
	tiles := systems.VisibleTiles(ctx.Game, ctx.Actor)
	ctx.Out.Reply(proto.Look(tiles))
}

func HandleInventory(ctx handlers.Context, _ string) {
	ctx.Out.Reply(proto.Inventory(ctx.Actor.Inventory))
}
