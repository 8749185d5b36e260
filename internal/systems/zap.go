package systems

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Ошибки контракта: это баги вызывающего кода, а не игровые исходы
var (
	ErrNoRayTracer   = errors.New("zap: ray tracer is not configured")
	ErrNoRandom      = errors.New("zap: randomness source is not configured")
	ErrInvalidLevel  = errors.New("zap: invalid level reference")
	ErrInvalidOrigin = errors.New("zap: origin is outside the grid")
)

// ZapPhase - состояние автомата одного выстрела
type ZapPhase uint8

const (
	PhaseIdle ZapPhase = iota
	PhaseRayComputed
	PhaseActorHit
	PhaseWallHit
	PhaseFizzled
	PhaseSnapshotUpdated
)

var zapPhaseToString = map[ZapPhase]string{
	PhaseIdle:            "idle",
	PhaseRayComputed:     "ray_computed",
	PhaseActorHit:        "actor_hit",
	PhaseWallHit:         "wall_hit",
	PhaseFizzled:         "fizzled",
	PhaseSnapshotUpdated: "snapshot_updated",
}

func (p ZapPhase) String() string {
	if val, ok := zapPhaseToString[p]; ok {
		return val
	}
	return "unknown"
}

// ZapOutcome - чем закончился выстрел
type ZapOutcome uint8

const (
	OutcomeNoCharges ZapOutcome = iota
	OutcomeActorHit
	OutcomeWallHit
	OutcomeFizzled
)

var zapOutcomeToString = map[ZapOutcome]string{
	OutcomeNoCharges: "no_charges",
	OutcomeActorHit:  "actor_hit",
	OutcomeWallHit:   "wall_hit",
	OutcomeFizzled:   "fizzled",
}

func (o ZapOutcome) String() string {
	if val, ok := zapOutcomeToString[o]; ok {
		return val
	}
	return "unknown"
}

// ItemNamer - внешний коллаборатор идентификации: как назвать жезл в сообщении
type ItemNamer interface {
	DisplayName(w domain.Wand) string
}

// PlainNamer берёт имя жезла как есть
type PlainNamer struct{}

func (PlainNamer) DisplayName(w domain.Wand) string {
	if w.Name != "" {
		return w.Name
	}
	return "жезл"
}

// ZapRequest - один выстрел.
// Если Target задан - луч от Origin к точке, иначе по Direction на MaxRange шагов
// (MaxRange <= 0 - дальность самого жезла).
type ZapRequest struct {
	Wand      domain.Wand
	Origin    domain.Position
	Target    *domain.Position
	Direction domain.Direction
	MaxRange  int
}

// ZapResult - всё, что нужно UI: новый мир, жезл, путь луча и сообщение
type ZapResult struct {
	World   *domain.WorldSnapshot
	Wand    domain.Wand
	Outcome ZapOutcome
	Phase   ZapPhase   // Последнее достигнутое состояние
	Trail   []ZapPhase // Все пройденные состояния по порядку
	Ray     domain.Ray
	Target  *domain.Actor // Поражённый актор после эффекта (nil, если никого)
	Removed bool          // Цель погибла и убрана с уровня
	Effect  domain.EffectKind
	Message string
}

func (r *ZapResult) advance(p ZapPhase) {
	r.Phase = p
	r.Trail = append(r.Trail, p)
}

// Resolver разрешает выстрелы жезлом
type Resolver struct {
	Tracer RayTracer
	Namer  ItemNamer
	Rng    domain.Rand
}

// NewResolver - резолвер с трассировщиком Брезенхэма и именами "как есть"
func NewResolver(rng domain.Rand) *Resolver {
	return &Resolver{
		Tracer: BresenhamTracer{},
		Namer:  PlainNamer{},
		Rng:    rng,
	}
}

// Zap проводит один выстрел: Idle -> RayComputed -> {ActorHit | WallHit | Fizzled} -> SnapshotUpdated.
// Входной снапшот не меняется никогда. Нет зарядов - тот же снапшот и тот же жезл, луч не строится.
func (r *Resolver) Zap(world *domain.WorldSnapshot, req ZapRequest) (ZapResult, error) {
	if r.Tracer == nil {
		return ZapResult{}, ErrNoRayTracer
	}
	if r.Rng == nil {
		return ZapResult{}, ErrNoRandom
	}
	level := world.Current()
	if level == nil || level.Grid == nil {
		lvl := -1
		if world != nil {
			lvl = world.CurrentLevel
		}
		return ZapResult{}, fmt.Errorf("%w: current level %d", ErrInvalidLevel, lvl)
	}
	if !level.Grid.InBounds(req.Origin) {
		return ZapResult{}, fmt.Errorf("%w: %v", ErrInvalidOrigin, req.Origin)
	}

	zapLogger := logger.Log.WithFields(logrus.Fields{
		"component": "zap_system",
		"wand_id":   req.Wand.ID,
		"origin":    req.Origin,
	})

	namer := r.Namer
	if namer == nil {
		namer = PlainNamer{}
	}
	wandName := capitalize(namer.DisplayName(req.Wand))

	effect := req.Wand.Effect
	if effect == nil {
		effect = domain.NoopEffect{}
	}

	res := ZapResult{World: world, Wand: req.Wand, Effect: effect.Kind()}
	res.advance(PhaseIdle)

	// 1. Пустой жезл - терминальное состояние
	if req.Wand.IsEmpty() {
		res.Outcome = OutcomeNoCharges
		res.Message = fmt.Sprintf("%s: нет зарядов.", wandName)
		zapLogger.Info("Zap rejected: no charges.")
		return res, nil
	}

	// 2. Луч
	if req.Target != nil {
		res.Ray = r.Tracer.Trace(req.Origin, *req.Target, level.Grid)
	} else {
		maxRange := req.MaxRange
		if maxRange <= 0 {
			maxRange = req.Wand.EffectiveRange()
		}
		res.Ray = r.Tracer.Cast(req.Origin, req.Direction, maxRange, level.Grid)
	}
	res.advance(PhaseRayComputed)

	// Заряд тратится в любой нетерминальной ветке
	res.Wand = req.Wand.Spend()

	// 3. Что поразил луч
	if target, ok := FindFirstActor(res.Ray, level); ok {
		out := effect.Apply(target, domain.EffectEnv{Rng: r.Rng, Level: level})
		if out.Fizzled {
			fizzle(&res, wandName)
		} else {
			res.advance(PhaseActorHit)
			res.Outcome = OutcomeActorHit
			res.Removed = out.Removed

			var updated *domain.Level
			if out.Removed {
				updated = level.RemoveActor(target.ID)
			} else {
				updated = level.ReplaceActor(out.Actor)
			}
			res.World = world.WithLevel(updated)

			hit := out.Actor
			res.Target = &hit
			res.Message = fmt.Sprintf("%s бьёт в цель. %s", wandName, out.Text)
		}
	} else if last, ok := res.Ray.Last(); ok && !level.Grid.IsWalkable(last) {
		res.advance(PhaseWallHit)
		res.Outcome = OutcomeWallHit
		res.Message = fmt.Sprintf("%s бьёт в стену.", wandName)
	} else {
		fizzle(&res, wandName)
	}

	res.advance(PhaseSnapshotUpdated)

	fields := logrus.Fields{
		"outcome":       res.Outcome.String(),
		"effect":        res.Effect.String(),
		"ray_length":    len(res.Ray),
		"charges_after": res.Wand.Charges,
	}
	if res.Target != nil {
		fields["target_id"] = res.Target.ID
		fields["removed"] = res.Removed
	}
	zapLogger.WithFields(fields).Info("Zap resolved.")

	return res, nil
}

func fizzle(res *ZapResult, wandName string) {
	res.advance(PhaseFizzled)
	res.Outcome = OutcomeFizzled
	res.Message = fmt.Sprintf("%s: луч гаснет, ничего не задев.", wandName)
}

// capitalize - первая буква заглавная (имя жезла начинает предложение)
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
