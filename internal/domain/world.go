package domain

// Cell - одна клетка карты
type Cell struct {
	Walkable    bool `json:"walkable"`
	Transparent bool `json:"transparent"`
}

// Готовые типы клеток
var (
	WallCell  = Cell{Walkable: false, Transparent: false}
	FloorCell = Cell{Walkable: true, Transparent: true}
	DoorCell  = Cell{Walkable: true, Transparent: false} // Закрытая дверь: пройти можно, увидеть сквозь нельзя
)

// Grid - дискретная карта уровня.
// Клетки хранятся плоским слайсом: индекс = Y * Width + X.
// Grid считается неизменяемым: все "изменения" возвращают копию.
type Grid struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	cells []Cell
}

// Level - карта плюс упорядоченный список акторов на ней
type Level struct {
	ID     int     `json:"id"`
	Grid   *Grid   `json:"grid"`
	Actors []Actor `json:"actors"`

	// SpatialHash: индекс клетки -> позиция актора в Actors.
	// Строится один раз в NewLevel, не сериализуется.
	spatialHash map[int]int
}

// WorldSnapshot - неизменяемое состояние мира на один ход.
// Мы никогда не меняем снапшот на месте: WithLevel возвращает новый.
type WorldSnapshot struct {
	Turn         int            `json:"turn"`
	CurrentLevel int            `json:"currentLevel"`
	PlayerID     ActorID        `json:"playerId"`
	Levels       map[int]*Level `json:"levels"`
}
