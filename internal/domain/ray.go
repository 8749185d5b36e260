package domain

// Ray - упорядоченный путь клеток от старта (не включая его) до точки остановки.
// Все позиции луча лежат внутри карты.
type Ray []Position

// Last возвращает последнюю клетку луча
func (r Ray) Last() (Position, bool) {
	if len(r) == 0 {
		return Position{}, false
	}
	return r[len(r)-1], true
}

func (r Ray) Contains(p Position) bool {
	for _, q := range r {
		if q == p {
			return true
		}
	}
	return false
}
