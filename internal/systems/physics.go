package systems

import (
	"cognitive-targeting/internal/domain"
	"cognitive-targeting/pkg/logger"

	"github.com/sirupsen/logrus"
)

// RayTracer - коллаборатор резолвера, который строит путь луча
type RayTracer interface {
	Trace(start, end domain.Position, grid *domain.Grid) domain.Ray
	Cast(origin domain.Position, dir domain.Direction, maxRange int, grid *domain.Grid) domain.Ray
}

// BresenhamTracer - трассировщик по умолчанию (TraceRay/CastRay)
type BresenhamTracer struct{}

func (BresenhamTracer) Trace(start, end domain.Position, grid *domain.Grid) domain.Ray {
	return TraceRay(start, end, grid)
}

func (BresenhamTracer) Cast(origin domain.Position, dir domain.Direction, maxRange int, grid *domain.Grid) domain.Ray {
	return CastRay(origin, dir, maxRange, grid)
}

// TraceRay строит луч от start к end целочисленным Брезенхэмом.
// Старт в луч не входит. Остановка (включительно): клетка end или непроходимая клетка.
// Выход за карту останавливает луч без добавления клетки.
func TraceRay(start, end domain.Position, grid *domain.Grid) domain.Ray {
	ray := domain.Ray{}
	if start == end || grid == nil {
		return ray
	}

	dx := abs(end.X - start.X)
	dy := abs(end.Y - start.Y)
	sx, sy := sign(end.X-start.X), sign(end.Y-start.Y)

	err := dx - dy
	x, y := start.X, start.Y

	for {
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}

		p := domain.Position{X: x, Y: y}
		if !grid.InBounds(p) {
			break
		}
		ray = append(ray, p)

		if p == end || !grid.IsWalkable(p) {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "TraceRay",
		"start_pos": start,
		"end_pos":   end,
		"length":    len(ray),
	}).Debug("Ray traced.")

	return ray
}

// CastRay идёт из origin по направлению dir не более maxRange шагов.
// Правило остановки то же, что у TraceRay: граница - без добавления, стена - с добавлением.
func CastRay(origin domain.Position, dir domain.Direction, maxRange int, grid *domain.Grid) domain.Ray {
	ray := domain.Ray{}
	ddx, ddy := dir.Delta()
	if (ddx == 0 && ddy == 0) || maxRange <= 0 || grid == nil {
		return ray
	}

	p := origin
	for step := 0; step < maxRange; step++ {
		p = p.Shift(ddx, ddy)
		if !grid.InBounds(p) {
			break
		}
		ray = append(ray, p)
		if !grid.IsWalkable(p) {
			break
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "physics_system",
		"function":  "CastRay",
		"start_pos": origin,
		"direction": dir.String(),
		"max_range": maxRange,
		"length":    len(ray),
	}).Debug("Ray cast.")

	return ray
}

// FindFirstActor - первый занятый актором участок луча (то, во что попадёт снаряд)
func FindFirstActor(ray domain.Ray, level *domain.Level) (domain.Actor, bool) {
	if level == nil {
		return domain.Actor{}, false
	}
	for _, p := range ray {
		if a, ok := level.ActorAt(p); ok {
			return a, true
		}
	}
	return domain.Actor{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
