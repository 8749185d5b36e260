package domain

import (
	"fmt"
	"strings"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ManhattanTo возвращает |dx| + |dy| - метрику дальности и сортировки целей
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// Shift возвращает новую позицию со смещением, не меняя текущую
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String - каноничный ключ "x,y" (логи, сообщения, отладка)
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction - одно из 8 направлений компаса
type Direction uint8

const (
	DirNone Direction = iota
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

// Единичные векторы. Ось Y направлена вниз (север = -1).
var directionDeltas = map[Direction][2]int{
	DirN:  {0, -1},
	DirNE: {1, -1},
	DirE:  {1, 0},
	DirSE: {1, 1},
	DirS:  {0, 1},
	DirSW: {-1, 1},
	DirW:  {-1, 0},
	DirNW: {-1, -1},
}

// Маппинг для конвертации JSON -> Domain
var directionStringToDir = map[string]Direction{
	"N":  DirN,
	"NE": DirNE,
	"E":  DirE,
	"SE": DirSE,
	"S":  DirS,
	"SW": DirSW,
	"W":  DirW,
	"NW": DirNW,
}

// Маппинг для логов Domain -> String
var directionDirToString = map[Direction]string{
	DirN:  "N",
	DirNE: "NE",
	DirE:  "E",
	DirSE: "SE",
	DirS:  "S",
	DirSW: "SW",
	DirW:  "W",
	DirNW: "NW",
}

// ParseDirection конвертирует строку из JSON в Direction (без учета регистра и пробелов по краям)
func ParseDirection(s string) Direction {
	if val, ok := directionStringToDir[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return val
	}
	return DirNone
}

// Delta возвращает шаг (dx, dy). Для DirNone - (0, 0).
func (d Direction) Delta() (int, int) {
	v := directionDeltas[d]
	return v[0], v[1]
}

func (d Direction) String() string {
	if val, ok := directionDirToString[d]; ok {
		return val
	}
	return "NONE"
}
