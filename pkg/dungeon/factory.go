package dungeon

import (
	"cognitive-targeting/internal/domain"
)

// CreatePlayer создает героя с заданным ID
func CreatePlayer(id domain.ActorID, pos domain.Position) domain.Actor {
	return Hero.Spawn(id, pos)
}
