package domain

// Wand - предмет с зарядами, стреляющий лучом.
// Создаётся вызывающим (инвентарём), движок только читает и возвращает копию.
type Wand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`    // Отображаемое имя; идентификацию решает внешний коллаборатор
	Charges int    `json:"charges"` // Оставшиеся заряды
	Range   int    `json:"range,omitempty"`
	Effect  Effect `json:"-"`
}

// IsEmpty - зарядов нет (отрицательное число считаем нулём)
func (w Wand) IsEmpty() bool {
	return w.Charges <= 0
}

// Spend возвращает копию жезла с одним потраченным зарядом
func (w Wand) Spend() Wand {
	if w.Charges > 0 {
		w.Charges--
	}
	return w
}

// EffectiveRange - дальность луча по направлению
func (w Wand) EffectiveRange() int {
	if w.Range > 0 {
		return w.Range
	}
	return DefaultZapRange
}
