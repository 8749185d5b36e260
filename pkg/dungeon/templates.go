package dungeon

import (
	"cognitive-targeting/internal/domain"
)

// ActorTemplate определяет шаблон для создания актора
type ActorTemplate struct {
	Name   string
	Type   string
	Glyph  rune
	HP     int
	Speed  int
	AI     domain.AIStateType
	Vision int
}

// Spawn создает актора из шаблона на заданной позиции
func (t ActorTemplate) Spawn(id domain.ActorID, pos domain.Position) domain.Actor {
	speed := t.Speed
	if speed <= 0 {
		speed = domain.DefaultSpeed
	}
	return domain.Actor{
		ID:   id,
		Type: t.Type,
		Name: t.Name,
		Pos:  pos,
		Stats: domain.StatsComponent{
			HP:        t.HP,
			MaxHP:     t.HP,
			Speed:     speed,
			BaseSpeed: speed,
		},
		AI:           domain.AIComponent{State: t.AI},
		VisionRadius: t.Vision,
	}
}

// --- ИГРОК ---

var Hero = ActorTemplate{
	Name:   "Герой",
	Type:   domain.EntityTypePlayer,
	Glyph:  '@',
	HP:     100,
	Vision: domain.VisionRadius,
}

// --- ВРАГИ ---

var Rat = ActorTemplate{
	Name:  "Крыса",
	Type:  domain.EntityTypeEnemy,
	Glyph: 'r',
	HP:    5,
	Speed: 12,
	AI:    domain.AIStateWandering,
}

var Goblin = ActorTemplate{
	Name:  "Хитрый Гоблин",
	Type:  domain.EntityTypeEnemy,
	Glyph: 'g',
	HP:    15,
	AI:    domain.AIStateIdle,
}

var Orc = ActorTemplate{
	Name:  "Свирепый Орк",
	Type:  domain.EntityTypeEnemy,
	Glyph: 'O',
	HP:    30,
	AI:    domain.AIStateHunting,
}

var Troll = ActorTemplate{
	Name:  "Каменный Тролль",
	Type:  domain.EntityTypeEnemy,
	Glyph: 'T',
	HP:    50,
	Speed: 8,
	AI:    domain.AIStateSleeping,
}

// EnemyTemplates - враги по символу на ASCII-карте
var EnemyTemplates = map[rune]ActorTemplate{
	Rat.Glyph:    Rat,
	Goblin.Glyph: Goblin,
	Orc.Glyph:    Orc,
	Troll.Glyph:  Troll,
}
