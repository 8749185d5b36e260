package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Dice - формула броска вида NdS+B
type Dice struct {
	Count int `json:"count"`
	Sides int `json:"sides"`
	Bonus int `json:"bonus"`
}

// ParseDice разбирает "2d6", "1d8+2", "3d4-1" или просто "5"
func ParseDice(s string) (Dice, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Dice{}, fmt.Errorf("empty dice formula")
	}

	var d Dice
	body := s
	if i := strings.LastIndexAny(s, "+-"); i > 0 {
		bonus, err := strconv.Atoi(s[i:])
		if err != nil {
			return Dice{}, fmt.Errorf("invalid dice bonus %q: %w", s[i:], err)
		}
		d.Bonus = bonus
		body = s[:i]
	}

	count, sides, found := strings.Cut(body, "d")
	if !found {
		// Фиксированное значение без кубиков
		bonus, err := strconv.Atoi(body)
		if err != nil {
			return Dice{}, fmt.Errorf("invalid dice formula %q: %w", s, err)
		}
		return Dice{Bonus: bonus + d.Bonus}, nil
	}

	d.Count = 1
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil || n < 0 {
			return Dice{}, fmt.Errorf("invalid dice count in %q", s)
		}
		d.Count = n
	}
	n, err := strconv.Atoi(sides)
	if err != nil || n <= 0 {
		return Dice{}, fmt.Errorf("invalid dice sides in %q", s)
	}
	d.Sides = n
	return d, nil
}

// MustParseDice - для констант в коде и тестах
func MustParseDice(s string) Dice {
	d, err := ParseDice(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Roll бросает кубики. Результат не меньше 1.
func (d Dice) Roll(rng Rand) int {
	total := d.Bonus
	if d.Sides > 0 {
		for i := 0; i < d.Count; i++ {
			total += rng.Intn(d.Sides) + 1
		}
	}
	if total < 1 {
		total = 1
	}
	return total
}

func (d Dice) String() string {
	var b strings.Builder
	if d.Count > 0 && d.Sides > 0 {
		fmt.Fprintf(&b, "%dd%d", d.Count, d.Sides)
		if d.Bonus > 0 {
			fmt.Fprintf(&b, "+%d", d.Bonus)
		} else if d.Bonus < 0 {
			fmt.Fprintf(&b, "%d", d.Bonus)
		}
		return b.String()
	}
	return strconv.Itoa(d.Bonus)
}
