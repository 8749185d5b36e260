package handlers

import (
	"encoding/json"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/internal/systems"
)

// WandRack описывает инвентарь, из которого берутся жезлы.
// Game реализует его своим набором жезлов.
type WandRack interface {
	Wand(id string) (domain.Wand, bool)
	All() []domain.Wand
}

// Context передает хендлеру состояние сессии.
// Хендлер ничего не меняет сам: все изменения он возвращает в Result.
type Context struct {
	World    *domain.WorldSnapshot
	Actor    domain.Actor   // Тот, кто выполняет команду (игрок)
	TargetID domain.ActorID // Текущая цель (может быть пустой)
	Wands    WandRack
	Resolver *systems.Resolver

	VisionRadius int // Радиус обзора из конфига (0 - радиус самого актора)
	ZapRange     int // Дальность VALIDATE по умолчанию
}

// Vision - радиус обзора для LOOK, TARGET, VALIDATE и ZAP.
// Все команды смотрят одним радиусом, иначе видимые цели расходятся.
func (c Context) Vision() int {
	if c.VisionRadius > 0 {
		return c.VisionRadius
	}
	return c.Actor.Vision()
}

// Level - текущий уровень (nil, если снапшот битый)
func (c Context) Level() *domain.Level {
	return c.World.Current()
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сессии напрямую, он возвращает данные.
type Result struct {
	Msg     string          // Текст лога
	MsgType string          // Тип лога (INFO, COMBAT, ERROR)
	Event   json.RawMessage // DTO результата для UI

	// Изменения сессии. nil - без изменений.
	World    *domain.WorldSnapshot
	TargetID *domain.ActorID
	Wand     *domain.Wand
}

// HandlerFunc - это контракт для любой команды (LOOK, ZAP, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// ErrorResult - игровой отказ: показываем игроку, но это не ошибка движка
func ErrorResult(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR"}
}

// WithEvent упаковывает DTO в Result.Event
func (r Result) WithEvent(event any) (Result, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return r, err
	}
	r.Event = raw
	return r, nil
}
