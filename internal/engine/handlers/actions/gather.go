package actions

import (
	"zappy-server/internal/domain"
	"zappy-server/internal/engine/handlers"
	"zappy-server/pkg/proto"
)

// HandleTake переносит единицу ресурса с клетки в инвентарь.
// Аргумент валидируется на завершении: за 7 тиков он не меняется,
// а ресурс на клетке - мог.
func HandleTake(ctx handlers.Context, arg string) {
	r, ok := domain.ResourceFromName(arg)
	if !ok {
		ctx.Out.Reply(proto.KO)
		return
	}

	tile := ctx.Game.Map.Tile(ctx.Actor.X, ctx.Actor.Y)
	if !ctx.Actor.TakeResource(tile, r) {
		ctx.Out.Reply(proto.KO)
		return
	}

	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Pgt(ctx.Actor.ID, r))
	ctx.Out.GUI(proto.Bct(ctx.Actor.X, ctx.Actor.Y, tile.Resources))
}

// HandleSet выкладывает единицу ресурса из инвентаря на клетку
func HandleSet(ctx handlers.Context, arg string) {
	r, ok := domain.ResourceFromName(arg)
	if !ok {
		ctx.Out.Reply(proto.KO)
		return
	}

	tile := ctx.Game.Map.Tile(ctx.Actor.X, ctx.Actor.Y)
	if !ctx.Actor.DropResource(tile, r) {
		ctx.Out.Reply(proto.KO)
		return
	}

	ctx.Out.Reply(proto.OK)
	ctx.Out.GUI(proto.Pdr(ctx.Actor.ID, r))
	ctx.Out.GUI(proto.Bct(ctx.Actor.X, ctx.Actor.Y, tile.Resources))
}
