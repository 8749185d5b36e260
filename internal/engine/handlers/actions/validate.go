package actions

import (
	"cognitive-targeting/internal/domain"
	"cognitive-targeting/internal/engine/handlers"
	"cognitive-targeting/internal/systems"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// HandleValidate перепроверяет цель перед действием
func HandleValidate(ctx handlers.Context, p api.ValidatePayload) (handlers.Result, error) {
	targetID := domain.ActorID(p.TargetID)
	if targetID == domain.NilActorID {
		targetID = ctx.TargetID
	}
	if targetID == domain.NilActorID {
		return handlers.ErrorResult("Цель не выбрана."), nil
	}

	maxRange := p.Range
	if maxRange == 0 {
		maxRange = ctx.ZapRange
	}

	res := systems.ValidateTargetByID(ctx.World, targetID, maxRange, ctx.Vision())

	logger.Log.WithFields(logrus.Fields{
		"component": "validate_handler",
		"target_id": targetID,
		"max_range": maxRange,
		"reason":    res.Reason.String(),
	}).Debug("Target validation processed")

	view := api.ValidationView{
		TargetID: string(targetID),
		Valid:    res.Valid,
		Reason:   res.Reason.String(),
		Message:  res.Message,
	}
	if !res.Valid {
		return handlers.ErrorResult(res.Message).WithEvent(view)
	}
	return handlers.Result{Msg: "Цель доступна.", MsgType: "INFO"}.WithEvent(view)
}
