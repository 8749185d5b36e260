package actions

import (
	"errors"
	"fmt"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/internal/engine/handlers"
	"cognitive-targeting/internal/systems"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleZap - выстрел жезлом по направлению, в точку или в текущую цель
func HandleZap(ctx handlers.Context, p api.ZapPayload) (handlers.Result, error) {
	actor := ctx.Actor

	log := logger.Log.WithFields(logrus.Fields{
		"component": "zap_handler",
		"actor_id":  actor.ID,
		"wand_id":   p.WandID,
	})

	if ctx.Resolver == nil {
		return handlers.Result{}, systems.ErrNoRayTracer
	}
	if ctx.Wands == nil {
		return handlers.Result{}, errors.New("zap handler: no wand rack")
	}

	wand, ok := ctx.Wands.Wand(p.WandID)
	if !ok {
		log.Warn("Wand not found in inventory")
		return handlers.ErrorResult("Жезл не найден в инвентаре."), nil
	}

	req := systems.ZapRequest{Wand: wand, Origin: actor.Pos, MaxRange: p.Range}

	switch {
	case p.Target != nil:
		target := domain.Position{X: p.Target.X, Y: p.Target.Y}
		req.Target = &target

	case p.Direction != "":
		req.Direction = domain.ParseDirection(p.Direction)

	default:
		// Стреляем в текущую цель: сначала убеждаемся, что она ещё доступна
		if ctx.TargetID == domain.NilActorID {
			return handlers.ErrorResult("Цель не выбрана."), nil
		}
		check := systems.ValidateTargetByID(ctx.World, ctx.TargetID, wand.EffectiveRange(), ctx.Vision())
		if !check.Valid {
			log.WithField("reason", check.Reason.String()).Warn("Current target rejected")
			return handlers.ErrorResult(check.Message), nil
		}
		target := check.Target.Pos
		req.Target = &target
	}

	zr, err := ctx.Resolver.Zap(ctx.World, req)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("zap %s: %w", wand.ID, err)
	}

	view := api.ZapView{
		WandID:      wand.ID,
		Outcome:     zr.Outcome.String(),
		Phase:       zr.Phase.String(),
		Effect:      zr.Effect.String(),
		Ray:         posViews(zr.Ray),
		Removed:     zr.Removed,
		ChargesLeft: zr.Wand.Charges,
		Message:     zr.Message,
	}
	if zr.Target != nil {
		view.TargetID = string(zr.Target.ID)
	}

	res := handlers.Result{Msg: zr.Message, MsgType: "COMBAT"}
	if zr.Outcome == systems.OutcomeNoCharges {
		res.MsgType = "INFO"
		return res.WithEvent(view)
	}

	updated := zr.Wand
	res.World = zr.World
	res.Wand = &updated

	// Убитая цель больше не цель
	if zr.Removed && zr.Target.ID == ctx.TargetID {
		cleared := domain.NilActorID
		res.TargetID = &cleared
	}

	return res.WithEvent(view)
}
