package systems

import (
	"fmt"
	"sort"
	"strings"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CycleMode - как переключать цель
type CycleMode uint8

const (
	CycleNearest CycleMode = iota
	CycleNext
	CyclePrev
)

var cycleModeStringToMode = map[string]CycleMode{
	"nearest": CycleNearest,
	"next":    CycleNext,
	"prev":    CyclePrev,
}

var cycleModeToString = map[CycleMode]string{
	CycleNearest: "nearest",
	CycleNext:    "next",
	CyclePrev:    "prev",
}

// ParseCycleMode разбирает режим из команды. Неизвестное значение -> false.
func ParseCycleMode(s string) (CycleMode, bool) {
	mode, ok := cycleModeStringToMode[strings.ToLower(strings.TrimSpace(s))]
	return mode, ok
}

func (m CycleMode) String() string {
	if val, ok := cycleModeToString[m]; ok {
		return val
	}
	return "unknown"
}

// TargetReason - стабильный код причины, по которой цель не подходит
type TargetReason uint8

const (
	ReasonNone TargetReason = iota
	ReasonNoLevel
	ReasonNotFound
	ReasonNotVisible
	ReasonOutOfRange
)

var targetReasonToString = map[TargetReason]string{
	ReasonNone:       "ok",
	ReasonNoLevel:    "no level",
	ReasonNotFound:   "not found",
	ReasonNotVisible: "not visible",
	ReasonOutOfRange: "out of range",
}

func (r TargetReason) String() string {
	if val, ok := targetReasonToString[r]; ok {
		return val
	}
	return "unknown"
}

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Target  domain.Actor
	Valid   bool
	Reason  TargetReason
	Message string // Сообщение для игрока, если Valid == false
}

func invalid(reason TargetReason, msg string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason, Message: msg}
}

// VisibleActors - акторы в наборе видимости, по возрастанию манхэттенского расстояния.
// Равные расстояния сохраняют порядок уровня. Клетка самого наблюдателя и мертвые исключаются.
func VisibleActors(viewer domain.Position, level *domain.Level, set VisibilitySet) []domain.Actor {
	if level == nil {
		return nil
	}

	out := make([]domain.Actor, 0, len(level.Actors))
	for _, a := range level.Actors {
		if a.Pos == viewer || a.Stats.IsDead {
			continue
		}
		if set.Has(a.Pos) {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return viewer.ManhattanTo(out[i].Pos) < viewer.ManhattanTo(out[j].Pos)
	})
	return out
}

// CycleTarget выбирает следующую цель из упорядоченного по расстоянию списка.
// nearest - всегда первый. next/prev - сдвиг от текущей цели по кругу;
// если текущей нет в списке, next начинает с первого, prev - с последнего.
func CycleTarget(currentID domain.ActorID, ordered []domain.Actor, mode CycleMode) (domain.Actor, bool) {
	n := len(ordered)
	if n == 0 {
		return domain.Actor{}, false
	}

	if mode == CycleNearest {
		return ordered[0], true
	}

	idx := -1
	for i, a := range ordered {
		if a.ID == currentID {
			idx = i
			break
		}
	}

	var next int
	switch {
	case mode == CycleNext:
		next = idx + 1
	case mode == CyclePrev && idx == -1:
		next = n - 1
	default:
		next = idx - 1
	}

	return ordered[((next%n)+n)%n], true
}

// ValidateTarget проверяет уже найденного актора.
// Порядок проверок фиксирован: видимость, затем дальность (включительно).
func ValidateTarget(actor domain.Actor, viewer domain.Position, maxRange int, requiresLOS bool, set VisibilitySet) ValidationResult {
	// 1. Видимость
	if requiresLOS && !set.Has(actor.Pos) {
		return invalid(ReasonNotVisible, "Вы не видите цель.")
	}

	// 2. Дальность
	if viewer.ManhattanTo(actor.Pos) > maxRange {
		return invalid(ReasonOutOfRange, fmt.Sprintf("Цель слишком далеко (дальность %d).", maxRange))
	}

	return ValidationResult{Target: actor, Valid: true, Reason: ReasonNone}
}

// ValidateTargetByID перепроверяет ранее выбранную цель перед действием.
// Между выбором и подтверждением цель могла умереть, уйти из вида или из радиуса,
// поэтому возвращается первая причина в порядке: уровень, существование, видимость, дальность.
// visionRadius <= 0 - радиус обзора самого игрока.
func ValidateTargetByID(world *domain.WorldSnapshot, targetID domain.ActorID, maxRange, visionRadius int) ValidationResult {
	vLogger := logger.Log.WithFields(logrus.Fields{
		"component": "targeting_system",
		"target_id": targetID,
		"max_range": maxRange,
	})

	// 1. Контекст уровня
	level := world.Current()
	if level == nil || level.Grid == nil {
		vLogger.Debug("Validation failed: no current level.")
		return invalid(ReasonNoLevel, "Нет текущего уровня.")
	}
	viewer, ok := level.ActorByID(world.PlayerID)
	if !ok {
		vLogger.Debug("Validation failed: viewer is not on the current level.")
		return invalid(ReasonNoLevel, "Нет текущего уровня.")
	}

	// 2. Цель существует
	target, ok := level.ActorByID(targetID)
	if !ok || target.Stats.IsDead {
		vLogger.Debug("Validation failed: target not found.")
		return invalid(ReasonNotFound, "Цель не найдена.")
	}

	// 3-4. Видимость и дальность
	if visionRadius <= 0 {
		visionRadius = viewer.Vision()
	}
	set := ComputeVisible(viewer.Pos, visionRadius, level.Grid)
	res := ValidateTarget(target, viewer.Pos, maxRange, true, set)

	vLogger.WithFields(logrus.Fields{
		"valid":  res.Valid,
		"reason": res.Reason.String(),
	}).Debug("Target validated.")
	return res
}
