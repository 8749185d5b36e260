package actions

import (
	"fmt"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/internal/engine/handlers"
	"cognitive-targeting/internal/systems"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleTarget переключает текущую цель среди видимых акторов
func HandleTarget(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	actor := ctx.Actor
	level := ctx.Level()

	mode, ok := systems.ParseCycleMode(p.Mode)
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown cycle mode %q", p.Mode)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"component":  "target_handler",
		"actor_id":   actor.ID,
		"mode":       mode.String(),
		"current_id": ctx.TargetID,
	})

	set := systems.ComputeVisible(actor.Pos, ctx.Vision(), level.Grid)
	visible := systems.VisibleActors(actor.Pos, level, set)
	view := api.TargetView{Mode: mode.String(), Candidates: len(visible)}

	target, found := systems.CycleTarget(ctx.TargetID, visible, mode)
	if !found {
		cleared := domain.NilActorID
		log.Debug("No visible targets")
		res := handlers.Result{Msg: "Нет видимых целей.", MsgType: "INFO", TargetID: &cleared}
		return res.WithEvent(view)
	}

	av := actorView(actor.Pos, target)
	view.Target = &av
	id := target.ID

	log.WithField("target_id", id).Info("Target selected")
	res := handlers.Result{
		Msg:      fmt.Sprintf("Цель: %s (расстояние %d).", target.Name, av.Distance),
		MsgType:  "INFO",
		TargetID: &id,
	}
	return res.WithEvent(view)
}
