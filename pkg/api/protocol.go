package api

import "encoding/json"

// --- UI -> ДВИЖОК ---

// ClientCommand - команда, как её присылает UI
type ClientCommand struct {
	Action  string          `json:"action"` // LOOK, TARGET, VALIDATE, ZAP
	Payload json.RawMessage `json:"payload,omitempty"`
}

// LookPayload - осмотреться. Radius 0 - радиус обзора игрока.
type LookPayload struct {
	Radius int `json:"radius,omitempty"`
}

// TargetPayload - выбрать цель: nearest, next, prev
type TargetPayload struct {
	Mode string `json:"mode"`
}

// ValidatePayload - перепроверить цель. Пустой TargetID - текущая цель.
// Range 0 - дальность по умолчанию.
type ValidatePayload struct {
	TargetID string `json:"targetId,omitempty"`
	Range    int    `json:"range,omitempty"`
}

// PosPayload - координаты клетки
type PosPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ZapPayload - выстрел жезлом.
// Direction - стрельба по направлению, Target - в точку.
// Если не задано ни то, ни другое, стреляем в текущую цель.
type ZapPayload struct {
	WandID    string      `json:"wandId"`
	Direction string      `json:"direction,omitempty"`
	Target    *PosPayload `json:"target,omitempty"`
	Range     int         `json:"range,omitempty"`
}

// --- ДВИЖОК -> UI ---

// PosView - клетка для клиента
type PosView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActorView это DTO для актора в поле зрения
type ActorView struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"` // PLAYER, ENEMY
	Name     string  `json:"name"`
	Pos      PosView `json:"pos"`
	HP       int     `json:"hp"`
	MaxHP    int     `json:"maxHp"`
	Asleep   bool    `json:"asleep,omitempty"`
	Distance int     `json:"distance"` // Манхэттен от наблюдателя
}

// LookView - результат LOOK: видимые клетки (построчно) и акторы (по расстоянию)
type LookView struct {
	Origin PosView     `json:"origin"`
	Radius int         `json:"radius"`
	Cells  []PosView   `json:"cells"`
	Actors []ActorView `json:"actors"`
}

// TargetView - результат TARGET. Target == nil, если выбрать некого.
type TargetView struct {
	Mode       string     `json:"mode"`
	Target     *ActorView `json:"target,omitempty"`
	Candidates int        `json:"candidates"`
}

// ValidationView - результат VALIDATE
type ValidationView struct {
	TargetID string `json:"targetId"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason"` // ok, no level, not found, not visible, out of range
	Message  string `json:"message,omitempty"`
}

// ZapView - результат ZAP
type ZapView struct {
	WandID      string    `json:"wandId"`
	Outcome     string    `json:"outcome"` // no_charges, actor_hit, wall_hit, fizzled
	Phase       string    `json:"phase"`
	Effect      string    `json:"effect"`
	Ray         []PosView `json:"ray"`
	TargetID    string    `json:"targetId,omitempty"`
	Removed     bool      `json:"removed,omitempty"`
	ChargesLeft int       `json:"chargesLeft"`
	Message     string    `json:"message"`
}

// LogEntry представляет одну запись в игровом логе.
// Вместо времени - номер хода: лог должен воспроизводиться один в один.
type LogEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, ERROR
	Turn int    `json:"turn"`
}

// WandView - жезл в инвентаре игрока
type WandView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Charges int    `json:"charges"`
	Range   int    `json:"range"`
	Effect  string `json:"effect"`
}

// StatusView - результат STATUS: жезлы и текущая цель
type StatusView struct {
	Turn     int        `json:"turn"`
	Player   ActorView  `json:"player"`
	TargetID string     `json:"targetId,omitempty"`
	Wands    []WandView `json:"wands"`
}
