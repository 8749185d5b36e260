package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"cognitive-targeting/internal/domain"
	"cognitive-targeting/internal/engine"
	"cognitive-targeting/internal/version"
	"cognitive-targeting/pkg/api"
	"cognitive-targeting/pkg/dungeon"
	"cognitive-targeting/pkg/logger"
)

func init() {
	logger.Init()
}

// demoRows - уровень по умолчанию
var demoRows = []string{
	"####################",
	"#@.......#.........#",
	"#........#...T.....#",
	"#...g....+.........#",
	"#........#....O....#",
	"#..r.....#.........#",
	"####################",
}

// demoScript - команды по умолчанию, если -script не задан
const demoScript = `[
	{"action": "LOOK"},
	{"action": "TARGET", "payload": {"mode": "nearest"}},
	{"action": "VALIDATE", "payload": {"range": 5}},
	{"action": "ZAP", "payload": {"wandId": "striking"}},
	{"action": "TARGET", "payload": {"mode": "next"}},
	{"action": "ZAP", "payload": {"wandId": "sleep"}},
	{"action": "ZAP", "payload": {"wandId": "lightning", "direction": "E"}},
	{"action": "ZAP", "payload": {"wandId": "teleport", "target": {"x": 3, "y": 5}}},
	{"action": "STATUS"}
]`

func main() {
	// 1. Парсинг конфигурации
	var (
		seed       int64
		radius     int
		scriptPath string
		envPath    string
	)
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 keeps the configured one)")
	flag.IntVar(&radius, "radius", 0, "Default LOOK radius (0 keeps the configured one)")
	flag.StringVar(&scriptPath, "script", "", "Path to a JSON array of commands (default: built-in demo)")
	flag.StringVar(&envPath, "env", ".env", "Path to the env file")
	flag.Parse()

	logger.Log.Info("Starting zapsim...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig(envPath)
	if err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if radius != 0 {
		cfg.VisionRadius = radius
	}
	logger.Log.Infof("Using seed %d, vision radius %d, zap range %d", cfg.Seed, cfg.VisionRadius, cfg.ZapRange)

	// 2. Уровень и жезлы
	world, err := dungeon.NewLevel(1).FromRows(demoRows...).BuildWorld()
	if err != nil {
		logger.Log.Fatal("Failed to build demo level: ", err)
	}
	wands, err := starterWands()
	if err != nil {
		logger.Log.Fatal("Failed to create wands: ", err)
	}

	// 3. Скрипт
	commands, err := loadScript(scriptPath)
	if err != nil {
		logger.Log.Fatal("Failed to load script: ", err)
	}

	game := engine.NewGame(cfg, world, wands...)
	if err := run(game, commands, os.Stdout); err != nil {
		logger.Log.Fatal(err)
	}
	logger.Log.Info("Done.")
}

func starterWands() ([]domain.Wand, error) {
	kinds := []struct {
		kind    string
		charges int
	}{
		{"striking", 3},
		{"sleep", 2},
		{"lightning", 1},
		{"teleport", 1},
	}
	out := make([]domain.Wand, 0, len(kinds))
	for _, k := range kinds {
		w, err := dungeon.NewWand(k.kind, k.charges)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func loadScript(path string) ([]api.ClientCommand, error) {
	raw := []byte(demoScript)
	if path != "" {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	var commands []api.ClientCommand
	if err := json.Unmarshal(raw, &commands); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return commands, nil
}

// run выполняет команды по очереди и печатает лог и события.
// Отклонённая команда не останавливает сценарий.
func run(game *engine.Game, commands []api.ClientCommand, out io.Writer) error {
	for i, cmd := range commands {
		res, err := game.Execute(cmd)
		if err != nil {
			logger.Log.WithField("step", i).WithError(err).Warn("Command failed")
			if _, werr := fmt.Fprintf(out, "[%d] %s: ошибка: %v\n", i, cmd.Action, err); werr != nil {
				return werr
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "[%d] %s: %s\n", i, cmd.Action, res.Msg); err != nil {
			return err
		}
		if len(res.Event) > 0 {
			if _, err := fmt.Fprintf(out, "    %s\n", res.Event); err != nil {
				return err
			}
		}
	}
	return nil
}
