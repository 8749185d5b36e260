package domain

import "fmt"

// EffectKind - тег варианта эффекта (для логов и DTO)
type EffectKind uint8

const (
	EffectNoop EffectKind = iota
	EffectDamage
	EffectSleep
	EffectSlow
	EffectHaste
	EffectTeleportAway
	EffectPolymorph
	EffectCancel
)

var effectKindToString = map[EffectKind]string{
	EffectNoop:         "noop",
	EffectDamage:       "damage",
	EffectSleep:        "sleep",
	EffectSlow:         "slow",
	EffectHaste:        "haste",
	EffectTeleportAway: "teleport_away",
	EffectPolymorph:    "polymorph",
	EffectCancel:       "cancel",
}

func (k EffectKind) String() string {
	if val, ok := effectKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// EffectEnv - то, что эффекту нужно кроме самой цели
type EffectEnv struct {
	Rng   Rand
	Level *Level // Уровень до применения эффекта (для поиска свободных клеток)
}

// EffectOutcome - результат применения эффекта к цели
type EffectOutcome struct {
	Actor   Actor  // Обновлённая копия цели
	Removed bool   // Цель погибла и должна исчезнуть с уровня
	Fizzled bool   // Эффект не смог сработать (например, некуда телепортировать)
	Text    string // Фрагмент сообщения, начинается с имени цели
}

// Effect - закрытый набор вариантов действия луча.
// Новый вариант обязан реализовать Apply, иначе он не будет Effect - проверяет компилятор.
type Effect interface {
	Kind() EffectKind
	Apply(target Actor, env EffectEnv) EffectOutcome
	sealed()
}

// DamageEffect - урон по формуле кубиков
type DamageEffect struct {
	Dice Dice
}

// SleepEffect - сон на случайное число ходов [MinTurns, MaxTurns]
type SleepEffect struct {
	MinTurns int
	MaxTurns int
}

// SlowEffect - скорость вдвое ниже, минимум 1
type SlowEffect struct{}

// HasteEffect - скорость вдвое выше, без верхнего предела
type HasteEffect struct{}

// TeleportAwayEffect - в случайную свободную проходимую клетку
type TeleportAwayEffect struct{}

// PolymorphEffect - полное здоровье и новое имя из Forms
type PolymorphEffect struct {
	Forms []string
}

// CancelEffect - снимает статусы, будит, возвращает базовую скорость
type CancelEffect struct{}

// NoopEffect - ничего не делает
type NoopEffect struct{}

func (DamageEffect) sealed()       {}
func (SleepEffect) sealed()        {}
func (SlowEffect) sealed()         {}
func (HasteEffect) sealed()        {}
func (TeleportAwayEffect) sealed() {}
func (PolymorphEffect) sealed()    {}
func (CancelEffect) sealed()       {}
func (NoopEffect) sealed()         {}

func (DamageEffect) Kind() EffectKind       { return EffectDamage }
func (SleepEffect) Kind() EffectKind        { return EffectSleep }
func (SlowEffect) Kind() EffectKind         { return EffectSlow }
func (HasteEffect) Kind() EffectKind        { return EffectHaste }
func (TeleportAwayEffect) Kind() EffectKind { return EffectTeleportAway }
func (PolymorphEffect) Kind() EffectKind    { return EffectPolymorph }
func (CancelEffect) Kind() EffectKind       { return EffectCancel }
func (NoopEffect) Kind() EffectKind         { return EffectNoop }

func (e DamageEffect) Apply(target Actor, env EffectEnv) EffectOutcome {
	updated := target.Clone()
	dmg := e.Dice.Roll(env.Rng)
	if updated.Stats.TakeDamage(dmg) {
		return EffectOutcome{
			Actor:   updated,
			Removed: true,
			Text:    fmt.Sprintf("%s получает %d урона и погибает.", target.Name, dmg),
		}
	}
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s получает %d урона.", target.Name, dmg),
	}
}

func (e SleepEffect) Apply(target Actor, env EffectEnv) EffectOutcome {
	lo, hi := e.MinTurns, e.MaxTurns
	if lo <= 0 && hi <= 0 {
		lo, hi = DefaultSleepMinTurns, DefaultSleepMaxTurns
	}
	if hi < lo {
		hi = lo
	}
	turns := lo + env.Rng.Intn(hi-lo+1)

	updated := target.Clone()
	updated.AddStatus(StatusSleeping, turns)
	updated.AI.FallAsleep()
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s засыпает.", target.Name),
	}
}

func (SlowEffect) Apply(target Actor, _ EffectEnv) EffectOutcome {
	updated := target.Clone()
	updated.Stats.Slow()
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s замедляется.", target.Name),
	}
}

func (HasteEffect) Apply(target Actor, _ EffectEnv) EffectOutcome {
	updated := target.Clone()
	updated.Stats.Haste()
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s ускоряется.", target.Name),
	}
}

func (TeleportAwayEffect) Apply(target Actor, env EffectEnv) EffectOutcome {
	// Свободная клетка: проходимая и никем не занятая (своя клетка тоже не подходит)
	var free []Position
	for _, p := range env.Level.Grid.WalkableCells() {
		if p == target.Pos || env.Level.IsOccupied(p) {
			continue
		}
		free = append(free, p)
	}
	if len(free) == 0 {
		return EffectOutcome{Actor: target, Fizzled: true}
	}

	updated := target.Clone()
	updated.Pos = free[env.Rng.Intn(len(free))]
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s исчезает.", target.Name),
	}
}

func (e PolymorphEffect) Apply(target Actor, env EffectEnv) EffectOutcome {
	forms := e.Forms
	if len(forms) == 0 {
		forms = DefaultPolymorphForms
	}

	updated := target.Clone()
	updated.Stats.RestoreHP()
	updated.Name = forms[env.Rng.Intn(len(forms))]
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s превращается: теперь это %s.", target.Name, updated.Name),
	}
}

func (CancelEffect) Apply(target Actor, _ EffectEnv) EffectOutcome {
	updated := target.Clone()
	updated.ClearStatuses()
	updated.AI.WakeUp()
	updated.Stats.ResetSpeed()
	return EffectOutcome{
		Actor: updated,
		Text:  fmt.Sprintf("%s теряет все наложенные эффекты.", target.Name),
	}
}

func (NoopEffect) Apply(target Actor, _ EffectEnv) EffectOutcome {
	return EffectOutcome{
		Actor: target,
		Text:  fmt.Sprintf("%s: ничего не происходит.", target.Name),
	}
}
