package engine

import "cognitive-targeting/internal/domain"

// WandRack - жезлы игрока в порядке получения.
// Заглушка инвентаря: пополнение зарядов и подбор предметов живут вне движка.
type WandRack struct {
	wands []domain.Wand
}

// NewWandRack копирует переданные жезлы
func NewWandRack(wands ...domain.Wand) *WandRack {
	r := &WandRack{wands: make([]domain.Wand, len(wands))}
	copy(r.wands, wands)
	return r
}

// Wand ищет жезл по ID
func (r *WandRack) Wand(id string) (domain.Wand, bool) {
	for _, w := range r.wands {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Wand{}, false
}

// All - копия списка жезлов
func (r *WandRack) All() []domain.Wand {
	out := make([]domain.Wand, len(r.wands))
	copy(out, r.wands)
	return out
}

// Put заменяет жезл с тем же ID или добавляет новый в конец
func (r *WandRack) Put(w domain.Wand) {
	for i := range r.wands {
		if r.wands[i].ID == w.ID {
			r.wands[i] = w
			return
		}
	}
	r.wands = append(r.wands, w)
}
