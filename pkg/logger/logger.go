package logger

import (
	"log"

	"go.uber.org/zap"
)

const envProd = "prod"

var global = zap.NewNop()

// Init builds the process-wide logger. Production config for env "prod",
// development config otherwise.
func Init(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	if env == envProd {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("logger init failed: %s", err)
	}

	global = l

	return l
}

// Logger returns the process-wide logger.
func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}
