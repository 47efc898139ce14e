package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger is a small leveled wrapper over the standard log package.
type Logger struct {
	level string
}

func New(level string) *Logger {
	return &Logger{level: level}
}

func (l *Logger) Info(msg string) { log.Printf("[INFO] %s", msg) }

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) { log.Printf("[WARN] %s", msg) }

func (l *Logger) Error(msg string) { log.Printf("[ERROR] %s", msg) }

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string) {
	if l.level == "debug" {
		log.Printf("[DEBUG] %s", msg)
	}
}

func (l *Logger) Fatal(msg string) {
	log.Printf("[FATAL] %s", msg)
	os.Exit(1)
}
