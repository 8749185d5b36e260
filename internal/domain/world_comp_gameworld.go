package domain

// NewGrid создает карту, заполненную клеткой fill
func NewGrid(width, height int, fill Cell) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

func (g *Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// InBounds - любую координату проверяем здесь, прежде чем индексировать
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// CellAt возвращает клетку. За границей карты - глухая стена.
func (g *Grid) CellAt(p Position) Cell {
	if !g.InBounds(p) {
		return WallCell
	}
	return g.cells[g.Index(p)]
}

func (g *Grid) IsWalkable(p Position) bool {
	return g.CellAt(p).Walkable
}

func (g *Grid) IsTransparent(p Position) bool {
	return g.CellAt(p).Transparent
}

// WithCell возвращает копию карты с заменённой клеткой (copy-on-write).
// Координата вне карты - ошибка вызывающего, возвращаем ту же карту.
func (g *Grid) WithCell(p Position, c Cell) *Grid {
	if !g.InBounds(p) {
		return g
	}
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	cells[g.Index(p)] = c
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}

// WalkableCells перечисляет проходимые клетки построчно (детерминированный порядок)
func (g *Grid) WalkableCells() []Position {
	out := make([]Position, 0, len(g.cells))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y*g.Width+x].Walkable {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// --- LEVEL ---

// NewLevel собирает уровень и строит пространственный индекс.
// Мертвые в индекс не попадают. Если два актора стоят в одной клетке, индекс указывает на первого по списку.
func NewLevel(id int, grid *Grid, actors []Actor) *Level {
	l := &Level{
		ID:          id,
		Grid:        grid,
		Actors:      actors,
		spatialHash: make(map[int]int, len(actors)),
	}
	for i, a := range actors {
		if a.Stats.IsDead || !grid.InBounds(a.Pos) {
			continue
		}
		idx := grid.Index(a.Pos)
		if _, taken := l.spatialHash[idx]; !taken {
			l.spatialHash[idx] = i
		}
	}
	return l
}

// ActorAt возвращает актора в клетке (быстро, через индекс)
func (l *Level) ActorAt(p Position) (Actor, bool) {
	if !l.Grid.InBounds(p) {
		return Actor{}, false
	}
	i, ok := l.spatialHash[l.Grid.Index(p)]
	if !ok {
		return Actor{}, false
	}
	return l.Actors[i], true
}

// IsOccupied - стоит ли кто-нибудь в клетке
func (l *Level) IsOccupied(p Position) bool {
	_, ok := l.ActorAt(p)
	return ok
}

// ActorByID ищет актора по ID
func (l *Level) ActorByID(id ActorID) (Actor, bool) {
	for _, a := range l.Actors {
		if a.ID == id {
			return a, true
		}
	}
	return Actor{}, false
}

// WithActors возвращает новый уровень с тем же Grid и другим списком акторов
func (l *Level) WithActors(actors []Actor) *Level {
	return NewLevel(l.ID, l.Grid, actors)
}

// ReplaceActor подменяет актора с тем же ID. Исходный список не трогаем.
func (l *Level) ReplaceActor(updated Actor) *Level {
	actors := make([]Actor, len(l.Actors))
	for i, a := range l.Actors {
		if a.ID == updated.ID {
			actors[i] = updated
			continue
		}
		actors[i] = a
	}
	return l.WithActors(actors)
}

// RemoveActor возвращает уровень без актора, порядок остальных сохраняется
func (l *Level) RemoveActor(id ActorID) *Level {
	actors := make([]Actor, 0, len(l.Actors))
	for _, a := range l.Actors {
		if a.ID != id {
			actors = append(actors, a)
		}
	}
	return l.WithActors(actors)
}

// --- SNAPSHOT ---

// NewWorldSnapshot создает снапшот с одним уровнем, он же текущий
func NewWorldSnapshot(level *Level, playerID ActorID) *WorldSnapshot {
	return &WorldSnapshot{
		CurrentLevel: level.ID,
		PlayerID:     playerID,
		Levels:       map[int]*Level{level.ID: level},
	}
}

// Level возвращает уровень по ID (nil, если такого нет)
func (w *WorldSnapshot) Level(id int) *Level {
	if w == nil || w.Levels == nil {
		return nil
	}
	return w.Levels[id]
}

// Current - уровень, на котором находится игрок
func (w *WorldSnapshot) Current() *Level {
	if w == nil {
		return nil
	}
	return w.Level(w.CurrentLevel)
}

// WithLevel возвращает новый снапшот с заменённым уровнем.
// Карта уровней копируется поверхностно: остальные уровни общие.
func (w *WorldSnapshot) WithLevel(level *Level) *WorldSnapshot {
	levels := make(map[int]*Level, len(w.Levels)+1)
	for id, l := range w.Levels {
		levels[id] = l
	}
	levels[level.ID] = level
	return &WorldSnapshot{
		Turn:         w.Turn,
		CurrentLevel: w.CurrentLevel,
		PlayerID:     w.PlayerID,
		Levels:       levels,
	}
}
