package actions

import (
	"fmt"
	"strings"

	"cognitive-targeting/internal/engine/handlers"
	"cognitive-targeting/internal/systems"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleLook считает поле зрения игрока и перечисляет видимых акторов
func HandleLook(ctx handlers.Context, p api.LookPayload) (handlers.Result, error) {
	actor := ctx.Actor
	level := ctx.Level()

	radius := p.Radius
	if radius == 0 {
		radius = ctx.Vision()
	}

	set := systems.ComputeVisible(actor.Pos, radius, level.Grid)
	visible := systems.VisibleActors(actor.Pos, level, set)

	view := api.LookView{
		Origin: posView(actor.Pos),
		Radius: radius,
		Cells:  posViews(set.Positions()),
		Actors: make([]api.ActorView, 0, len(visible)),
	}
	names := make([]string, 0, len(visible))
	for _, a := range visible {
		view.Actors = append(view.Actors, actorView(actor.Pos, a))
		names = append(names, a.Name)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":     "look_handler",
		"actor_id":      actor.ID,
		"radius":        radius,
		"visible_tiles": set.Len(),
		"visible_count": len(visible),
	}).Debug("Look processed")

	msg := "Вокруг никого."
	if len(names) > 0 {
		msg = fmt.Sprintf("Вы видите: %s.", strings.Join(names, ", "))
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}.WithEvent(view)
}
