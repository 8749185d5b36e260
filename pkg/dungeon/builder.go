package dungeon

import (
	"errors"
	"fmt"

	"cognitive-targeting/internal/domain"
)

// Символы ASCII-карты
const (
	GlyphWall   = '#'
	GlyphFloor  = '.'
	GlyphDoor   = '+'
	GlyphPlayer = '@'
)

var ErrNoPlayer = errors.New("level has no player")

// LevelBuilder предоставляет fluent API для создания уровней из ASCII-строк.
// Ошибка запоминается и возвращается из Build.
type LevelBuilder struct {
	id       int
	grid     *domain.Grid
	actors   []domain.Actor
	playerID domain.ActorID
	newID    func() domain.ActorID
	err      error
}

// NewLevel создает новый builder для уровня
func NewLevel(id int) *LevelBuilder {
	return &LevelBuilder{
		id:     id,
		actors: make([]domain.Actor, 0),
		newID:  domain.NewActorID,
	}
}

// WithIDGenerator подменяет генератор ID (по умолчанию UUID)
func (b *LevelBuilder) WithIDGenerator(gen func() domain.ActorID) *LevelBuilder {
	b.newID = gen
	return b
}

// FromRows разбирает карту: # стена, . пол, + дверь, @ игрок, буквы - враги из EnemyTemplates.
// Все строки должны быть одной длины.
func (b *LevelBuilder) FromRows(rows ...string) *LevelBuilder {
	if b.err != nil {
		return b
	}
	if len(rows) == 0 {
		b.err = errors.New("level map has no rows")
		return b
	}

	width := len([]rune(rows[0]))
	grid := domain.NewGrid(width, len(rows), domain.FloorCell)

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			b.err = fmt.Errorf("row %d has width %d, want %d", y, len(runes), width)
			return b
		}

		for x, ch := range runes {
			pos := domain.Position{X: x, Y: y}
			switch ch {
			case GlyphFloor:
			case GlyphWall:
				grid = grid.WithCell(pos, domain.WallCell)
			case GlyphDoor:
				grid = grid.WithCell(pos, domain.DoorCell)
			case GlyphPlayer:
				if b.playerID != domain.NilActorID {
					b.err = fmt.Errorf("second player at %v", pos)
					return b
				}
				b.playerID = b.newID()
				b.actors = append(b.actors, CreatePlayer(b.playerID, pos))
			default:
				t, ok := EnemyTemplates[ch]
				if !ok {
					b.err = fmt.Errorf("unknown glyph %q at %v", ch, pos)
					return b
				}
				b.actors = append(b.actors, t.Spawn(b.newID(), pos))
			}
		}
	}

	b.grid = grid
	return b
}

// WithActor добавляет готового актора (после тех, что пришли с карты)
func (b *LevelBuilder) WithActor(a domain.Actor) *LevelBuilder {
	if b.err != nil {
		return b
	}
	if a.ID == domain.NilActorID {
		a.ID = b.newID()
	}
	if a.Type == domain.EntityTypePlayer && b.playerID == domain.NilActorID {
		b.playerID = a.ID
	}
	b.actors = append(b.actors, a)
	return b
}

// PlayerID - ID игрока (пустой, если игрока нет)
func (b *LevelBuilder) PlayerID() domain.ActorID {
	return b.playerID
}

// Build проверяет и собирает уровень
func (b *LevelBuilder) Build() (*domain.Level, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.grid == nil {
		return nil, errors.New("level map is not set")
	}

	for _, a := range b.actors {
		if !b.grid.InBounds(a.Pos) {
			return nil, fmt.Errorf("actor %s at %v is out of bounds", a.ID, a.Pos)
		}
		if !b.grid.IsWalkable(a.Pos) {
			return nil, fmt.Errorf("actor %s at %v stands in a wall", a.ID, a.Pos)
		}
	}

	return domain.NewLevel(b.id, b.grid, b.actors), nil
}

// BuildWorld собирает уровень и оборачивает его в снапшот. Нужен игрок.
func (b *LevelBuilder) BuildWorld() (*domain.WorldSnapshot, error) {
	level, err := b.Build()
	if err != nil {
		return nil, err
	}
	if b.playerID == domain.NilActorID {
		return nil, ErrNoPlayer
	}
	return domain.NewWorldSnapshot(level, b.playerID), nil
}
