package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"cognitive-targeting/internal/domain"

	"github.com/joho/godotenv"
)

// DefaultSeed - зерно по умолчанию. Фиксированное: одинаковый запуск - одинаковый бой.
const DefaultSeed int64 = 1

// Переменные окружения конфигурации
const (
	EnvSeed         = "CD_SEED"
	EnvVisionRadius = "CD_VISION_RADIUS"
	EnvZapRange     = "CD_ZAP_RANGE"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все броски сессии.
	Seed int64

	// VisionRadius - радиус LOOK по умолчанию
	VisionRadius int

	// ZapRange - дальность VALIDATE по умолчанию
	ZapRange int
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Seed:         DefaultSeed,
		VisionRadius: domain.VisionRadius,
		ZapRange:     domain.DefaultZapRange,
	}
}

// LoadConfig читает .env (если файлы есть) и переменные окружения поверх умолчаний.
// Уже выставленные переменные окружения .env не перетирает.
func LoadConfig(files ...string) (Config, error) {
	cfg := NewConfig()

	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load env file: %w", err)
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	var err error
	if cfg.VisionRadius, err = intFromEnv(EnvVisionRadius, cfg.VisionRadius); err != nil {
		return cfg, err
	}
	if cfg.ZapRange, err = intFromEnv(EnvZapRange, cfg.ZapRange); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func intFromEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return def, fmt.Errorf("%s: must not be negative, got %d", key, n)
	}
	return n, nil
}
