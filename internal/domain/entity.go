package domain

import "github.com/google/uuid"

// --- КОМПОНЕНТЫ ---

// StatsComponent - Характеристики и Ресурсы
type StatsComponent struct {
	HP        int  `json:"hp"`
	MaxHP     int  `json:"maxHp"`
	Speed     int  `json:"speed"`
	BaseSpeed int  `json:"baseSpeed"` // Скорость "по умолчанию", к ней возвращает отмена эффектов
	IsDead    bool `json:"isDead"`
}

// AIStateType - поведенческий тег. Ядру важно только "спит / не спит".
type AIStateType uint8

const (
	AIStateIdle AIStateType = iota
	AIStateSleeping
	AIStateWandering
	AIStateHunting
	AIStateFleeing
)

// AIComponent - Мозги и Поведение
type AIComponent struct {
	State AIStateType `json:"state"`
}

// StatusKind - вид временного статуса
type StatusKind uint8

const (
	StatusSleeping StatusKind = iota + 1
	StatusConfused
	StatusPoisoned
	StatusParalyzed
)

// StatusEffect - временный статус на акторе
type StatusEffect struct {
	Kind  StatusKind `json:"kind"`
	Turns int        `json:"turns"`
}

// --- СУЩНОСТЬ ---

// NewActorID создает уникальный ID актора.
// Вызывается только при создании акторов (билдер уровня), никогда внутри расчётов хода.
func NewActorID() ActorID {
	return ActorID(uuid.NewString())
}

// Actor - игрок или монстр, занимающий клетку.
// Передаётся по значению: движок никогда не владеет акторами и возвращает обновлённые копии.
type Actor struct {
	// Идентификация
	ID   ActorID `json:"id"`
	Type string  `json:"type"`
	Name string  `json:"name"`

	Pos Position `json:"pos"`

	Stats    StatsComponent `json:"stats"`
	AI       AIComponent    `json:"ai"`
	Statuses []StatusEffect `json:"statuses,omitempty"`

	// VisionRadius - радиус обзора; 0 означает VisionRadius по умолчанию
	VisionRadius int `json:"visionRadius,omitempty"`
}

// Clone - глубокая копия (слайс статусов не должен делиться между снапшотами)
func (a Actor) Clone() Actor {
	c := a
	if a.Statuses != nil {
		c.Statuses = make([]StatusEffect, len(a.Statuses))
		copy(c.Statuses, a.Statuses)
	}
	return c
}

// Vision возвращает эффективный радиус обзора
func (a Actor) Vision() int {
	if a.VisionRadius > 0 {
		return a.VisionRadius
	}
	return VisionRadius
}
