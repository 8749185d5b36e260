package main

import (
	"bytes"
	"strings"
	"testing"

	"cognitive-targeting/internal/engine"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/dungeon"
)

func TestDemoScriptRuns(t *testing.T) {
	world, err := dungeon.NewLevel(1).FromRows(demoRows...).BuildWorld()
	if err != nil {
		t.Fatalf("demo level: %v", err)
	}
	wands, err := starterWands()
	if err != nil {
		t.Fatalf("wands: %v", err)
	}
	commands, err := loadScript("")
	if err != nil {
		t.Fatalf("script: %v", err)
	}

	var out bytes.Buffer
	game := engine.NewGame(engine.NewConfig(), world, wands...)
	if err := run(game, commands, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Count(out.String(), "\n")
	if lines < len(commands) {
		t.Errorf("printed %d lines for %d commands:\n%s", lines, len(commands), out.String())
	}
	if strings.Contains(out.String(), "ошибка") {
		t.Errorf("demo script should not fail:\n%s", out.String())
	}
}

func TestRun_ContinuesAfterError(t *testing.T) {
	world, _ := dungeon.NewLevel(1).FromRows("@..").BuildWorld()
	game := engine.NewGame(engine.NewConfig(), world)

	var out bytes.Buffer
	err := run(game, []api.ClientCommand{{Action: "JUMP"}, {Action: "STATUS"}}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "[0] JUMP: ошибка") || !strings.Contains(out.String(), "[1] STATUS") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
