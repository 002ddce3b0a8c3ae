package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"mediacompress/internal/domain/repositories"
)

var levels = map[string]int{
	"debug":   0,
	"info":    1,
	"warning": 2,
	"error":   3,
}

// ConsoleLogger выводит строки статуса в терминал
type ConsoleLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	errOut io.Writer
	level  int

	debug   *color.Color
	warning *color.Color
	failure *color.Color
	success *color.Color
}

// ConsoleOption настройка консольного логгера
type ConsoleOption func(*ConsoleLogger)

// WithWriters задает потоки вывода (по умолчанию stdout и stderr)
func WithWriters(out, errOut io.Writer) ConsoleOption {
	return func(l *ConsoleLogger) {
		l.out = out
		l.errOut = errOut
	}
}

// WithoutColor отключает раскраску
func WithoutColor() ConsoleOption {
	return func(l *ConsoleLogger) {
		for _, c := range []*color.Color{l.debug, l.warning, l.failure, l.success} {
			c.DisableColor()
		}
	}
}

// NewConsoleLogger создает консольный логгер.
// Цвет отключается сам при NO_COLOR или выводе не в терминал.
func NewConsoleLogger(logLevel string, opts ...ConsoleOption) *ConsoleLogger {
	level, ok := levels[strings.ToLower(logLevel)]
	if !ok {
		level = levels["info"]
	}

	l := &ConsoleLogger{
		mu:      &sync.Mutex{},
		out:     os.Stdout,
		errOut:  os.Stderr,
		level:   level,
		debug:   color.New(color.Faint),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed, color.Bold),
		success: color.New(color.FgGreen),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Debug логирует отладочное сообщение
func (l *ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.write(l.out, l.debug, format, args...)
	}
}

// Info логирует информационное сообщение
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	if l.shouldLog("info") {
		l.write(l.out, nil, format, args...)
	}
}

// Warning логирует предупреждение
func (l *ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.shouldLog("warning") {
		l.write(l.errOut, l.warning, format, args...)
	}
}

// Error логирует ошибку
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	if l.shouldLog("error") {
		l.write(l.errOut, l.failure, format, args...)
	}
}

// Success логирует успешное выполнение
func (l *ConsoleLogger) Success(format string, args ...interface{}) {
	if l.shouldLog("info") {
		l.write(l.out, l.success, format, args...)
	}
}

// WithField в консоли поля не выводятся
func (l *ConsoleLogger) WithField(string, interface{}) repositories.Logger {
	return l
}

// Close ничего не делает: потоки принадлежат процессу
func (l *ConsoleLogger) Close() error {
	return nil
}

func (l *ConsoleLogger) write(w io.Writer, c *color.Color, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if c == nil {
		fmt.Fprintln(w, message)
		return
	}
	c.Fprintln(w, message)
}

func (l *ConsoleLogger) shouldLog(level string) bool {
	return levels[level] >= l.level
}
