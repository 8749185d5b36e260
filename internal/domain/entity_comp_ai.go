package domain

// FallAsleep усыпляет актора
func (a *AIComponent) FallAsleep() {
	a.State = AIStateSleeping
}

// WakeUp будит спящего. Остальные состояния не трогаем.
func (a *AIComponent) WakeUp() {
	if a.State == AIStateSleeping {
		a.State = AIStateIdle
	}
}

func (a AIComponent) IsAsleep() bool {
	return a.State == AIStateSleeping
}

// AddStatus добавляет статус актору (копия слайса - снапшоты не делят память)
func (a *Actor) AddStatus(kind StatusKind, turns int) {
	statuses := make([]StatusEffect, 0, len(a.Statuses)+1)
	statuses = append(statuses, a.Statuses...)
	a.Statuses = append(statuses, StatusEffect{Kind: kind, Turns: turns})
}

// HasStatus проверяет наличие статуса
func (a Actor) HasStatus(kind StatusKind) bool {
	for _, s := range a.Statuses {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// ClearStatuses снимает все статусы
func (a *Actor) ClearStatuses() {
	a.Statuses = nil
}
