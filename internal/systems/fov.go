package systems

import (
	"sort"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// VisibilitySet - клетки, видимые из одной точки в один момент времени.
// Ключ - сама позиция (значение), поэтому проверка членства не зависит от формата строки.
type VisibilitySet struct {
	origin domain.Position
	radius int
	cells  mapset.Set[domain.Position]
}

// Origin - точка обзора (всегда входит в набор)
func (v VisibilitySet) Origin() domain.Position { return v.origin }

// Radius - радиус, с которым набор был посчитан
func (v VisibilitySet) Radius() int { return v.radius }

// Has проверяет видимость клетки
func (v VisibilitySet) Has(p domain.Position) bool {
	return v.cells.Has(p)
}

// Len - число видимых клеток
func (v VisibilitySet) Len() int {
	return v.cells.Size()
}

// Positions возвращает видимые клетки построчно (по Y, затем по X)
func (v VisibilitySet) Positions() []domain.Position {
	out := make([]domain.Position, 0, v.cells.Size())
	v.cells.Each(func(p domain.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// IsInFOV - проверка членства в наборе видимости
func IsInFOV(pos domain.Position, set VisibilitySet) bool {
	return set.Has(pos)
}

// ComputeVisible считает поле зрения симметричным shadowcasting'ом по четырём квадрантам.
// Наклоны хранятся как целые дроби, плавающей точки нет.
//
// Радиус - жёсткая граница (dx²+dy² <= r²). Непрозрачная клетка видна сама,
// но закрывает весь угловой сектор за собой. Клетки за картой считаются стенами.
func ComputeVisible(origin domain.Position, radius int, grid *domain.Grid) VisibilitySet {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": origin,
		"radius":       radius,
	})

	set := VisibilitySet{origin: origin, radius: radius, cells: mapset.New[domain.Position]()}

	// Центр всегда виден
	set.cells.Put(origin)

	if radius <= 0 || grid == nil {
		fovLogger.Debug("FOV calculation skipped: observer sees only own cell.")
		return set
	}

	for _, q := range quadrants {
		s := scanner{origin: origin, radius: radius, grid: grid, quad: q, cells: set.cells}
		s.scan(row{depth: 1, start: fraction{-1, 1}, end: fraction{1, 1}})
	}

	fovLogger.WithField("visible_tiles", set.Len()).Debug("FOV calculation complete.")
	return set
}

// fraction - наклон num/den, den > 0
type fraction struct {
	num, den int
}

// quadrant переводит (глубина, колонка) в мировые координаты
type quadrant func(origin domain.Position, depth, col int) domain.Position

var quadrants = [4]quadrant{
	// Север
	func(o domain.Position, depth, col int) domain.Position { return domain.Position{X: o.X + col, Y: o.Y - depth} },
	// Юг
	func(o domain.Position, depth, col int) domain.Position { return domain.Position{X: o.X + col, Y: o.Y + depth} },
	// Восток
	func(o domain.Position, depth, col int) domain.Position { return domain.Position{X: o.X + depth, Y: o.Y + col} },
	// Запад
	func(o domain.Position, depth, col int) domain.Position { return domain.Position{X: o.X - depth, Y: o.Y + col} },
}

type row struct {
	depth      int
	start, end fraction
}

// minCol = floor(depth*start + 1/2)
func (r row) minCol() int {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol = ceil(depth*end - 1/2)
func (r row) maxCol() int {
	return ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
}

// isSymmetric: центр клетки лежит внутри сектора [start, end]
func (r row) isSymmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

func (r row) next() row {
	return row{depth: r.depth + 1, start: r.start, end: r.end}
}

// slopeOf - наклон левого края клетки: (2*col - 1) / (2*depth)
func slopeOf(depth, col int) fraction {
	return fraction{num: 2*col - 1, den: 2 * depth}
}

type scanner struct {
	origin domain.Position
	radius int
	grid   *domain.Grid
	quad   quadrant
	cells  mapset.Set[domain.Position]
}

// tile: 0 - ещё не было клетки, 1 - пол, 2 - стена
const (
	tileNone = iota
	tileFloor
	tileWall
)

func (s *scanner) scan(r row) {
	if r.depth > s.radius {
		return
	}

	prev := tileNone
	for col := r.minCol(); col <= r.maxCol(); col++ {
		pos := s.quad(s.origin, r.depth, col)

		cur := tileFloor
		if !s.grid.IsTransparent(pos) {
			cur = tileWall
		}

		if cur == tileWall || r.isSymmetric(col) {
			s.reveal(pos)
		}

		if prev == tileWall && cur == tileFloor {
			r.start = slopeOf(r.depth, col)
		}
		if prev == tileFloor && cur == tileWall {
			nr := r.next()
			nr.end = slopeOf(r.depth, col)
			s.scan(nr)
		}
		prev = cur
	}

	if prev == tileFloor {
		s.scan(r.next())
	}
}

func (s *scanner) reveal(pos domain.Position) {
	if !s.grid.InBounds(pos) {
		return
	}
	if s.origin.DistanceSquaredTo(pos) > s.radius*s.radius {
		return
	}
	s.cells.Put(pos)
}

// floorDiv - деление с округлением вниз (b > 0)
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv - деление с округлением вверх (b > 0)
func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
