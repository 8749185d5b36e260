package actions

import (
	"cognitive-targeting/internal/domain"
	"cognitive-targeting/pkg/api"
)

func posView(p domain.Position) api.PosView {
	return api.PosView{X: p.X, Y: p.Y}
}

func posViews(ps []domain.Position) []api.PosView {
	out := make([]api.PosView, len(ps))
	for i, p := range ps {
		out[i] = posView(p)
	}
	return out
}

func actorView(viewer domain.Position, a domain.Actor) api.ActorView {
	return api.ActorView{
		ID:       string(a.ID),
		Type:     a.Type,
		Name:     a.Name,
		Pos:      posView(a.Pos),
		HP:       a.Stats.HP,
		MaxHP:    a.Stats.MaxHP,
		Asleep:   a.AI.IsAsleep(),
		Distance: viewer.ManhattanTo(a.Pos),
	}
}

func wandView(w domain.Wand) api.WandView {
	effect := domain.EffectNoop
	if w.Effect != nil {
		effect = w.Effect.Kind()
	}
	return api.WandView{
		ID:      w.ID,
		Name:    w.Name,
		Charges: w.Charges,
		Range:   w.EffectiveRange(),
		Effect:  effect.String(),
	}
}
