package logger

import (
	"log/slog"
	"os"
)

var log *slog.Logger

func Init(environment string) {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	log = slog.New(handler)
}

func l() *slog.Logger {
	if log == nil {
		log = slog.Default()
	}

	return log
}

func Info(msg string, args ...any) {
	l().Info(msg, norm(args)...)
}

func Warn(msg string, args ...any) {
	l().Warn(msg, norm(args)...)
}

func Error(msg string, args ...any) {
	l().Error(msg, norm(args)...)
}

func Fatal(msg string, args ...any) {
	l().Error(msg, norm(args)...)
	os.Exit(1)
}

// norm lets callers pass a bare error as the only argument.
func norm(args []any) []any {
	if len(args) == 1 {
		if _, ok := args[0].(slog.Attr); !ok {
			return []any{slog.Any("error", args[0])}
		}
	}

	return args
}
