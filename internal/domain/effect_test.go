package domain

import "testing"

func testTarget() Actor {
	return Actor{
		ID:   "gob",
		Type: EntityTypeEnemy,
		Name: "гоблин",
		Pos:  Position{X: 2, Y: 2},
		Stats: StatsComponent{
			HP: 10, MaxHP: 15, Speed: 10, BaseSpeed: 10,
		},
		AI: AIComponent{State: AIStateHunting},
	}
}

func testEnv(vals ...int) EffectEnv {
	if len(vals) == 0 {
		vals = []int{0}
	}
	level := NewLevel(1, NewGrid(5, 5, FloorCell), []Actor{testTarget()})
	return EffectEnv{Rng: &seqRand{vals: vals}, Level: level}
}

func TestDamageEffect(t *testing.T) {
	target := testTarget()

	// 1d6 с броском 3 -> 4 урона
	out := DamageEffect{Dice: MustParseDice("1d6")}.Apply(target, testEnv(3))
	if out.Removed {
		t.Fatal("4 damage should not kill a 10 HP target")
	}
	if out.Actor.Stats.HP != 6 {
		t.Errorf("HP = %d, want 6", out.Actor.Stats.HP)
	}
	if target.Stats.HP != 10 {
		t.Error("Apply must not mutate the input actor")
	}

	// Смертельный урон
	out = DamageEffect{Dice: Dice{Bonus: 10}}.Apply(target, testEnv())
	if !out.Removed {
		t.Error("10 damage on 10 HP should mark the target for removal")
	}
	if !out.Actor.Stats.IsDead {
		t.Error("Killed target should be flagged IsDead")
	}
}

func TestSleepEffect(t *testing.T) {
	tests := []struct {
		name      string
		eff       SleepEffect
		roll      int
		wantTurns int
	}{
		{"Default range low", SleepEffect{}, 0, 3},
		{"Default range high", SleepEffect{}, 3, 6},
		{"Custom range", SleepEffect{MinTurns: 2, MaxTurns: 2}, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.eff.Apply(testTarget(), testEnv(tt.roll))
			if !out.Actor.AI.IsAsleep() {
				t.Error("Target should be asleep")
			}
			if len(out.Actor.Statuses) != 1 || out.Actor.Statuses[0].Kind != StatusSleeping {
				t.Fatalf("Statuses = %+v, want one sleeping status", out.Actor.Statuses)
			}
			if got := out.Actor.Statuses[0].Turns; got != tt.wantTurns {
				t.Errorf("Turns = %d, want %d", got, tt.wantTurns)
			}
		})
	}
}

func TestSlowEffect(t *testing.T) {
	tests := []struct {
		speed, want int
	}{
		{10, 5},
		{7, 3},
		{1, 1},
		{0, 1},
	}
	for _, tt := range tests {
		target := testTarget()
		target.Stats.Speed = tt.speed
		out := SlowEffect{}.Apply(target, testEnv())
		if out.Actor.Stats.Speed != tt.want {
			t.Errorf("Slow(%d) = %d, want %d", tt.speed, out.Actor.Stats.Speed, tt.want)
		}
	}
}

func TestHasteEffect_NoUpperClamp(t *testing.T) {
	target := testTarget()
	target.Stats.Speed = 1 << 20
	out := HasteEffect{}.Apply(target, testEnv())
	if out.Actor.Stats.Speed != 1<<21 {
		t.Errorf("Speed = %d, want %d", out.Actor.Stats.Speed, 1<<21)
	}
}

func TestTeleportAwayEffect(t *testing.T) {
	target := testTarget()
	blocker := Actor{ID: "rat", Pos: Position{X: 1, Y: 0}}

	// Карта 4x1: (0,0) стена, (1,0) крыса, (2,0) цель, (3,0) свободна
	grid := NewGrid(4, 1, FloorCell).WithCell(Position{X: 0, Y: 0}, WallCell)
	target.Pos = Position{X: 2, Y: 0}
	level := NewLevel(1, grid, []Actor{blocker, target})

	out := TeleportAwayEffect{}.Apply(target, EffectEnv{Rng: &seqRand{vals: []int{0}}, Level: level})
	if out.Fizzled {
		t.Fatal("One free cell left, teleport should succeed")
	}
	if out.Actor.Pos != (Position{X: 3, Y: 0}) {
		t.Errorf("Pos = %v, want 3,0", out.Actor.Pos)
	}
	if target.Pos != (Position{X: 2, Y: 0}) {
		t.Error("Input actor moved")
	}
}

func TestTeleportAwayEffect_NoRoomFizzles(t *testing.T) {
	// Единственная свободная клетка - та, где стоит сама цель
	target := testTarget()
	target.Pos = Position{X: 1, Y: 0}
	blocker := Actor{ID: "rat", Pos: Position{X: 0, Y: 0}}
	level := NewLevel(1, NewGrid(2, 1, FloorCell), []Actor{blocker, target})

	out := TeleportAwayEffect{}.Apply(target, EffectEnv{Rng: &seqRand{vals: []int{0}}, Level: level})
	if !out.Fizzled {
		t.Error("No free walkable cell: expected fizzle")
	}
	if out.Actor.Pos != target.Pos {
		t.Error("Fizzled teleport must leave the target in place")
	}
}

func TestPolymorphEffect(t *testing.T) {
	target := testTarget()
	out := PolymorphEffect{Forms: []string{"жаба", "слизень"}}.Apply(target, testEnv(1))
	if out.Actor.Name != "слизень" {
		t.Errorf("Name = %q, want слизень", out.Actor.Name)
	}
	if out.Actor.Stats.HP != out.Actor.Stats.MaxHP {
		t.Errorf("HP = %d, want max %d", out.Actor.Stats.HP, out.Actor.Stats.MaxHP)
	}
	if out.Actor.ID != target.ID {
		t.Error("Polymorph keeps identity")
	}

	out = PolymorphEffect{}.Apply(target, testEnv(0))
	if out.Actor.Name != DefaultPolymorphForms[0] {
		t.Errorf("Default form = %q, want %q", out.Actor.Name, DefaultPolymorphForms[0])
	}
}

func TestCancelEffect(t *testing.T) {
	target := testTarget()
	target.Stats.Speed = 40
	target.AI.FallAsleep()
	target.AddStatus(StatusSleeping, 4)
	target.AddStatus(StatusPoisoned, 2)

	out := CancelEffect{}.Apply(target, testEnv())
	if len(out.Actor.Statuses) != 0 {
		t.Errorf("Statuses = %+v, want none", out.Actor.Statuses)
	}
	if out.Actor.AI.IsAsleep() {
		t.Error("Cancel should wake the target")
	}
	if out.Actor.Stats.Speed != 10 {
		t.Errorf("Speed = %d, want base 10", out.Actor.Stats.Speed)
	}
	if len(target.Statuses) != 2 {
		t.Error("Input actor statuses must be untouched")
	}
}

func TestNoopEffect(t *testing.T) {
	target := testTarget()
	out := NoopEffect{}.Apply(target, testEnv())
	if out.Removed || out.Fizzled {
		t.Error("Noop neither kills nor fizzles")
	}
	if out.Actor.Stats != target.Stats || out.Actor.Pos != target.Pos {
		t.Error("Noop must not change the target")
	}
}

func TestEffectKind_String(t *testing.T) {
	effects := []Effect{
		DamageEffect{}, SleepEffect{}, SlowEffect{}, HasteEffect{},
		TeleportAwayEffect{}, PolymorphEffect{}, CancelEffect{}, NoopEffect{},
	}
	seen := map[string]bool{}
	for _, e := range effects {
		name := e.Kind().String()
		if name == "unknown" || seen[name] {
			t.Errorf("Kind %v has bad or duplicate name %q", e.Kind(), name)
		}
		seen[name] = true
	}
}
