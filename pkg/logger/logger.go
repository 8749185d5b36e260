package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер движка.
// Создаётся сразу, чтобы библиотечный код не падал, если Init не вызывали.
var Log = logrus.New()

// Init настраивает глобальный логгер по переменным окружения.
// Вызывается один раз при старте (main.go) или в TestMain.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure задаёт уровень, формат и вывод явно.
// Пустой или неизвестный уровень -> "info". Формат "json" или текст.
func Configure(logLevel, logFormat string, out io.Writer) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, текст - для разработки
	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}
