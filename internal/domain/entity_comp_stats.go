package domain

// TakeDamage наносит урон. Возвращает true, если цель погибла.
func (s *StatsComponent) TakeDamage(amount int) bool {
	if s.IsDead {
		return false
	}

	if amount < 0 {
		amount = 0
	}

	s.HP -= amount

	if s.HP <= 0 {
		s.HP = 0
		s.IsDead = true
		return true
	}
	return false
}

// RestoreHP возвращает здоровье к максимуму
func (s *StatsComponent) RestoreHP() {
	s.HP = s.MaxHP
}

// Slow - половина скорости, округление вниз, минимум 1
func (s *StatsComponent) Slow() {
	s.Speed /= 2
	if s.Speed < 1 {
		s.Speed = 1
	}
}

// Haste удваивает скорость. Верхнего предела нет.
func (s *StatsComponent) Haste() {
	s.Speed *= 2
}

// ResetSpeed возвращает базовую скорость
func (s *StatsComponent) ResetSpeed() {
	s.Speed = s.BaseSpeed
}
