package domain

import (
	"math/rand"
	"testing"
)

// seqRand возвращает заранее заданные значения (по модулю n)
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

func TestParseDice(t *testing.T) {
	tests := []struct {
		in      string
		want    Dice
		wantErr bool
	}{
		{"2d6", Dice{Count: 2, Sides: 6}, false},
		{"1d8+2", Dice{Count: 1, Sides: 8, Bonus: 2}, false},
		{"3d4-1", Dice{Count: 3, Sides: 4, Bonus: -1}, false},
		{"d10", Dice{Count: 1, Sides: 10}, false},
		{" 5 ", Dice{Bonus: 5}, false},
		{"2D6", Dice{Count: 2, Sides: 6}, false},
		{"", Dice{}, true},
		{"2d", Dice{}, true},
		{"xd6", Dice{}, true},
		{"2d0", Dice{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDice(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDice(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDice_RollRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := MustParseDice("2d6+1")
	for i := 0; i < 200; i++ {
		if got := d.Roll(rng); got < 3 || got > 13 {
			t.Fatalf("iteration %d: roll %d out of [3,13]", i, got)
		}
	}
}

func TestDice_RollNeverBelowOne(t *testing.T) {
	d := Dice{Count: 1, Sides: 4, Bonus: -10}
	if got := d.Roll(&seqRand{vals: []int{0}}); got != 1 {
		t.Errorf("Roll = %d, want 1", got)
	}
}

func TestDice_String(t *testing.T) {
	for _, s := range []string{"2d6", "1d8+2", "3d4-1", "7"} {
		if got := MustParseDice(s).String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}
