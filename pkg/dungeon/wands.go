package dungeon

import (
	"fmt"
	"sort"

	"cognitive-targeting/internal/domain"
)

// WandTemplate определяет жезл: имя, дальность и эффект
type WandTemplate struct {
	Name   string
	Range  int
	Effect domain.Effect
}

// WandTemplates - все известные жезлы по ключу
var WandTemplates = map[string]WandTemplate{
	"striking":  {Name: "жезл удара", Effect: domain.DamageEffect{Dice: domain.MustParseDice("2d6")}},
	"lightning": {Name: "жезл молний", Range: 8, Effect: domain.DamageEffect{Dice: domain.MustParseDice("6d6")}},
	"sleep":     {Name: "жезл сна", Effect: domain.SleepEffect{MinTurns: domain.DefaultSleepMinTurns, MaxTurns: domain.DefaultSleepMaxTurns}},
	"slow":      {Name: "жезл замедления", Effect: domain.SlowEffect{}},
	"haste":     {Name: "жезл ускорения", Effect: domain.HasteEffect{}},
	"teleport":  {Name: "жезл телепортации", Effect: domain.TeleportAwayEffect{}},
	"polymorph": {Name: "жезл превращения", Effect: domain.PolymorphEffect{}},
	"cancel":    {Name: "жезл отмены", Effect: domain.CancelEffect{}},
	"nothing":   {Name: "жезл пустоты", Effect: domain.NoopEffect{}},
}

// WandKinds - ключи WandTemplates по алфавиту
func WandKinds() []string {
	kinds := make([]string, 0, len(WandTemplates))
	for k := range WandTemplates {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// NewWand создает жезл по шаблону. ID жезла - ключ шаблона.
func NewWand(kind string, charges int) (domain.Wand, error) {
	t, ok := WandTemplates[kind]
	if !ok {
		return domain.Wand{}, fmt.Errorf("unknown wand kind %q", kind)
	}
	return domain.Wand{
		ID:      kind,
		Name:    t.Name,
		Charges: charges,
		Range:   t.Range,
		Effect:  t.Effect,
	}, nil
}
