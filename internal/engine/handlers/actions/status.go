package actions

import (
	"cognitive-targeting/internal/engine/handlers"
	"cognitive-targeting/pkg/api"
)

// HandleStatus - жезлы игрока и текущая цель. Данных не требует.
func HandleStatus(ctx handlers.Context) (handlers.Result, error) {
	view := api.StatusView{
		Turn:     ctx.World.Turn,
		Player:   actorView(ctx.Actor.Pos, ctx.Actor),
		TargetID: string(ctx.TargetID),
		Wands:    []api.WandView{},
	}
	if ctx.Wands != nil {
		for _, w := range ctx.Wands.All() {
			view.Wands = append(view.Wands, wandView(w))
		}
	}
	return handlers.EmptyResult().WithEvent(view)
}
