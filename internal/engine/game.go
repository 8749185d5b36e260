package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/internal/engine/handlers"
	"cognitive-targeting/internal/engine/handlers/actions"
	"cognitive-targeting/internal/systems"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrNoPlayer      = errors.New("player is not on the current level")
)

// Game - однопоточная сессия одного игрока.
// Владеет текущим снапшотом, жезлами, текущей целью и генератором случайных чисел.
// Каждый принятый ZAP заменяет указатель на снапшот; старые снапшоты не меняются.
type Game struct {
	cfg      Config
	world    *domain.WorldSnapshot
	wands    *WandRack
	targetID domain.ActorID
	resolver *systems.Resolver

	Logs []api.LogEntry

	handlers map[domain.ActionType]handlers.HandlerFunc
	logSeq   int
}

// NewGame создает сессию поверх готового снапшота
func NewGame(cfg Config, world *domain.WorldSnapshot, wands ...domain.Wand) *Game {
	g := &Game{
		cfg:      cfg,
		world:    world,
		wands:    NewWandRack(wands...),
		resolver: systems.NewResolver(rand.New(rand.NewSource(cfg.Seed))),
		Logs:     []api.LogEntry{},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	g.registerHandlers()
	return g
}

func (g *Game) registerHandlers() {
	g.handlers[domain.ActionLook] = handlers.WithPayload(actions.HandleLook)
	g.handlers[domain.ActionTarget] = handlers.WithPayload(actions.HandleTarget)
	g.handlers[domain.ActionValidate] = handlers.WithPayload(actions.HandleValidate)
	g.handlers[domain.ActionZap] = handlers.WithPayload(actions.HandleZap)
	g.handlers[domain.ActionStatus] = handlers.WithEmptyPayload(actions.HandleStatus)
}

// World - текущий снапшот
func (g *Game) World() *domain.WorldSnapshot { return g.world }

// TargetID - текущая цель игрока
func (g *Game) TargetID() domain.ActorID { return g.targetID }

// Wands - жезлы игрока (копия)
func (g *Game) Wands() []domain.Wand { return g.wands.All() }

// Execute выполняет одну команду UI и применяет её результат к сессии
func (g *Game) Execute(cmd api.ClientCommand) (handlers.Result, error) {
	internal := domain.NewInternalCommand(cmd.Action, cmd.Payload)

	log := logger.Log.WithFields(logrus.Fields{
		"component": "game",
		"action":    internal.Action.String(),
	})

	handler, ok := g.handlers[internal.Action]
	if !ok {
		log.WithField("raw_action", cmd.Action).Warn("Unknown action")
		return handlers.Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}

	level := g.world.Current()
	if level == nil {
		return handlers.Result{}, fmt.Errorf("game: %w", systems.ErrInvalidLevel)
	}
	player, ok := level.ActorByID(g.world.PlayerID)
	if !ok {
		return handlers.Result{}, ErrNoPlayer
	}

	ctx := handlers.Context{
		World:        g.world,
		Actor:        player,
		TargetID:     g.targetID,
		Wands:        g.wands,
		Resolver:     g.resolver,
		VisionRadius: g.cfg.VisionRadius,
		ZapRange:     g.cfg.ZapRange,
	}

	result, err := handler(ctx, internal.Payload)
	if err != nil {
		log.WithError(err).Warn("Command rejected")
		return result, err
	}

	g.apply(result)
	return result, nil
}

// apply переносит изменения из Result в сессию
func (g *Game) apply(result handlers.Result) {
	if result.World != nil {
		g.world = result.World
	}
	if result.Wand != nil {
		g.wands.Put(*result.Wand)
	}
	if result.TargetID != nil {
		g.targetID = *result.TargetID
	}

	// Логирование результата
	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		g.AddLog(result.Msg, msgType)
	}
}

// AddLog добавляет запись в игровой лог
func (g *Game) AddLog(text, msgType string) {
	turn := 0
	if g.world != nil {
		turn = g.world.Turn
	}
	g.logSeq++
	g.Logs = append(g.Logs, api.LogEntry{
		ID:   fmt.Sprintf("log_%d", g.logSeq),
		Text: text,
		Type: msgType,
		Turn: turn,
	})
}
