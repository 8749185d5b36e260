package domain

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
)

// ActorID - строковый идентификатор актора (игрока или монстра)
type ActorID string

// NilActorID - "нет цели"
const NilActorID ActorID = ""

// Rand - источник случайности для бросков урона, длительностей и телепорта.
// *rand.Rand из math/rand подходит напрямую; в тестах его подменяют сидированным.
type Rand interface {
	Intn(n int) int
}
